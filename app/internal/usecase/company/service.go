package company

import (
	"context"

	dom "example.com/solar-directory/app/internal/domain/company"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*dom.Company, error) {
	return s.repo.GetByID(ctx, id)
}
