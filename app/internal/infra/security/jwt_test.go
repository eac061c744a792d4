package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domview "example.com/solar-directory/app/internal/domain/view"
	viewsuc "example.com/solar-directory/app/internal/usecase/views"
)

func TestShareToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("share-secret", time.Hour)

	token, err := svc.IssueShareToken(viewsuc.ShareClaims{Kind: domview.KindCompanies, Query: "state=SP&rating=4"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseShareToken(token)
	require.NoError(t, err)
	require.Equal(t, domview.KindCompanies, claims.Kind)
	require.Equal(t, "state=SP&rating=4", claims.Query)
}

func TestShareToken_WrongSecret(t *testing.T) {
	token, err := NewJWTService("one", time.Hour).IssueShareToken(viewsuc.ShareClaims{Kind: domview.KindProducts})
	require.NoError(t, err)

	_, err = NewJWTService("two", time.Hour).ParseShareToken(token)
	require.Error(t, err)
}

func TestShareToken_Expired(t *testing.T) {
	svc := NewJWTService("share-secret", -time.Minute)

	token, err := svc.IssueShareToken(viewsuc.ShareClaims{Kind: domview.KindProducts, Query: "search=painel"})
	require.NoError(t, err)

	_, err = svc.ParseShareToken(token)
	require.Error(t, err)
}

func TestShareToken_Garbage(t *testing.T) {
	_, err := NewJWTService("share-secret", time.Hour).ParseShareToken("not.a.token")
	require.Error(t, err)
}
