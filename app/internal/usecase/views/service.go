package views

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"example.com/solar-directory/app/internal/domain/filter"
	dom "example.com/solar-directory/app/internal/domain/view"
)

// ShareClaims is the payload of a share token.
type ShareClaims struct {
	Kind  dom.Kind
	Query string
}

type TokenService interface {
	IssueShareToken(c ShareClaims) (string, error)
	ParseShareToken(token string) (*ShareClaims, error)
}

type Service struct {
	repo   dom.Repository
	tokens TokenService
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo dom.Repository, tokens TokenService, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:   repo,
		tokens: tokens,
		now:    time.Now,
		logger: logger,
	}
}

// Resolved is a view together with its decoded filter state.
type Resolved struct {
	ID    string
	Kind  dom.Kind
	Query string
	State filter.State
}

// Save stores the query under a new random id, normalised through Decode and
// Encode.
func (s *Service) Save(ctx context.Context, kind dom.Kind, query string) (*dom.SavedView, error) {
	if !kind.IsValid() {
		return nil, dom.ErrInvalidKind
	}
	now := s.now().UTC()
	v, err := s.repo.Create(ctx, &dom.SavedView{
		ID:        uuid.NewString(),
		Kind:      kind,
		Query:     filter.Encode(filter.Decode(query)),
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info("view saved", zap.String("id", v.ID), zap.String("kind", string(kind)))
	return v, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Resolved, error) {
	id = strings.TrimSpace(id)
	if _, err := uuid.Parse(id); err != nil {
		return nil, dom.ErrViewNotFound
	}
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Resolved{ID: v.ID, Kind: v.Kind, Query: v.Query, State: filter.Decode(v.Query)}, nil
}

func (s *Service) Share(kind dom.Kind, query string) (string, error) {
	if !kind.IsValid() {
		return "", dom.ErrInvalidKind
	}
	return s.tokens.IssueShareToken(ShareClaims{
		Kind:  kind,
		Query: filter.Encode(filter.Decode(query)),
	})
}

func (s *Service) Resolve(token string) (*Resolved, error) {
	claims, err := s.tokens.ParseShareToken(token)
	if err != nil {
		return nil, dom.ErrInvalidShareToken
	}
	if !claims.Kind.IsValid() {
		return nil, dom.ErrInvalidShareToken
	}
	return &Resolved{Kind: claims.Kind, Query: claims.Query, State: filter.Decode(claims.Query)}, nil
}

// SessionPersister keeps the saved view id up to date with a session's latest
// state. It satisfies directory.Persister.
type SessionPersister struct {
	svc  *Service
	id   string
	kind dom.Kind
}

func (s *Service) SessionPersister(id string, kind dom.Kind) *SessionPersister {
	if id == "" {
		id = uuid.NewString()
	}
	return &SessionPersister{svc: s, id: id, kind: kind}
}

func (p *SessionPersister) ID() string {
	return p.id
}

func (p *SessionPersister) Persist(ctx context.Context, query string) error {
	now := p.svc.now().UTC()
	return p.svc.repo.Upsert(ctx, &dom.SavedView{
		ID:        p.id,
		Kind:      p.kind,
		Query:     query,
		CreatedAt: now,
		UpdatedAt: now,
	})
}
