package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domview "example.com/solar-directory/app/internal/domain/view"
	viewsuc "example.com/solar-directory/app/internal/usecase/views"
)

const shareIssuer = "solar-directory"

var errInvalidToken = errors.New("invalid token")

type JWTService struct {
	secret     []byte
	expiration time.Duration
}

func NewJWTService(secret string, expiration time.Duration) *JWTService {
	return &JWTService{
		secret:     []byte(secret),
		expiration: expiration,
	}
}

type shareClaims struct {
	Kind  string `json:"kind"`
	Query string `json:"q"`
	jwt.RegisteredClaims
}

func (s *JWTService) IssueShareToken(c viewsuc.ShareClaims) (string, error) {
	now := time.Now()
	claims := shareClaims{
		Kind:  string(c.Kind),
		Query: c.Query,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    shareIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ParseShareToken(token string) (*viewsuc.ShareClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &shareClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(shareIssuer))
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*shareClaims)
	if !ok || !parsed.Valid {
		return nil, errInvalidToken
	}

	return &viewsuc.ShareClaims{
		Kind:  domview.Kind(claims.Kind),
		Query: claims.Query,
	}, nil
}
