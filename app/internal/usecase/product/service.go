package product

import (
	"context"

	dom "example.com/solar-directory/app/internal/domain/product"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetByID(ctx context.Context, id int64) (*dom.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByCompany(ctx context.Context, companyID int64) ([]*dom.Product, error) {
	return s.repo.List(ctx, dom.ListFilter{CompanyID: &companyID, OnlyActive: true})
}
