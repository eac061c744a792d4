package directory

import (
	"context"

	"go.uber.org/zap"

	"example.com/solar-directory/app/internal/domain/filter"
	domview "example.com/solar-directory/app/internal/domain/view"
)

type Service struct {
	entities   EntitySource
	categories CategorySource
	locale     string
	logger     *zap.Logger
}

func NewService(entities EntitySource, categories CategorySource, locale string, logger *zap.Logger) *Service {
	if locale == "" {
		locale = filter.DefaultLocale
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		entities:   entities,
		categories: categories,
		locale:     locale,
		logger:     logger,
	}
}

// Collections are the resident inputs of a filter pass.
type Collections struct {
	Entities    []filter.Entity
	Categories  []filter.Category
	FetchFailed bool
}

type BrowseInput struct {
	Kind  domview.Kind
	State filter.State
	Sort  filter.SortBy
}

type Result struct {
	Kind        domview.Kind
	State       filter.State
	Query       string
	View        filter.View
	FetchFailed bool
}

// Load fetches fresh collections. A failing fetch is logged and replaced by an
// empty collection with FetchFailed set; only an invalid kind is an error.
func (s *Service) Load(ctx context.Context, kind domview.Kind) (Collections, error) {
	if !kind.IsValid() {
		return Collections{}, domview.ErrInvalidKind
	}

	var out Collections
	entities, err := s.entities.Entities(ctx, kind)
	if err != nil {
		s.logger.Warn("entity fetch failed", zap.String("kind", string(kind)), zap.Error(err))
		entities = []filter.Entity{}
		out.FetchFailed = true
	}
	categories, err := s.categories.Categories(ctx)
	if err != nil {
		s.logger.Warn("category fetch failed", zap.Error(err))
		categories = []filter.Category{}
		out.FetchFailed = true
	}
	out.Entities = entities
	out.Categories = categories
	return out, nil
}

func (s *Service) Browse(ctx context.Context, in BrowseInput) (*Result, error) {
	coll, err := s.Load(ctx, in.Kind)
	if err != nil {
		return nil, err
	}
	v := filter.NewView(coll.Entities, coll.Categories, in.State, in.Sort, s.locale)
	s.logger.Debug("browse",
		zap.String("kind", string(in.Kind)),
		zap.String("query", filter.Encode(in.State)),
		zap.Int("total", len(coll.Entities)),
		zap.Int("matched", len(v.Items)),
	)
	return &Result{
		Kind:        in.Kind,
		State:       in.State,
		Query:       filter.Encode(in.State),
		View:        v,
		FetchFailed: coll.FetchFailed,
	}, nil
}
