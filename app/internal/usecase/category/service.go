package category

import (
	"context"
	"strings"

	dom "example.com/solar-directory/app/internal/domain/category"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

type ListInput struct {
	Featured bool
	Status   string
}

func (s *Service) GetByID(ctx context.Context, id int64) (*dom.Category, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns categories, optionally only featured ones. Status may be empty,
// "active" or "inactive".
func (s *Service) List(ctx context.Context, in ListInput) ([]*dom.Category, error) {
	filter := dom.ListFilter{OnlyFeatured: in.Featured}

	var want dom.Status
	if status := strings.ToLower(strings.TrimSpace(in.Status)); status != "" {
		want = dom.Status(status)
		if !want.IsValid() {
			return nil, dom.ErrCategoryInvalidStatus
		}
		filter.OnlyActive = want == dom.StatusActive
	}

	categories, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if want != dom.StatusInactive {
		return categories, nil
	}

	inactive := make([]*dom.Category, 0, len(categories))
	for _, c := range categories {
		if c.Status == dom.StatusInactive {
			inactive = append(inactive, c)
		}
	}
	return inactive, nil
}
