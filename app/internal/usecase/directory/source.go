package directory

import (
	"context"

	domcategory "example.com/solar-directory/app/internal/domain/category"
	domcompany "example.com/solar-directory/app/internal/domain/company"
	"example.com/solar-directory/app/internal/domain/filter"
	domproduct "example.com/solar-directory/app/internal/domain/product"
	domview "example.com/solar-directory/app/internal/domain/view"
)

// EntitySource fetches a whole entity collection of the given kind.
type EntitySource interface {
	Entities(ctx context.Context, kind domview.Kind) ([]filter.Entity, error)
}

type CategorySource interface {
	Categories(ctx context.Context) ([]filter.Category, error)
}

// CatalogSource reads collections from the catalog repositories.
type CatalogSource struct {
	companies  domcompany.Repository
	products   domproduct.Repository
	categories domcategory.Repository
}

func NewCatalogSource(
	companies domcompany.Repository,
	products domproduct.Repository,
	categories domcategory.Repository,
) *CatalogSource {
	return &CatalogSource{
		companies:  companies,
		products:   products,
		categories: categories,
	}
}

func (s *CatalogSource) Entities(ctx context.Context, kind domview.Kind) ([]filter.Entity, error) {
	switch kind {
	case domview.KindCompanies:
		companies, err := s.companies.List(ctx, domcompany.ListFilter{OnlyActive: true})
		if err != nil {
			return nil, err
		}
		out := make([]filter.Entity, 0, len(companies))
		for _, c := range companies {
			out = append(out, c.Entity())
		}
		return out, nil
	case domview.KindProducts:
		products, err := s.products.List(ctx, domproduct.ListFilter{OnlyActive: true})
		if err != nil {
			return nil, err
		}
		out := make([]filter.Entity, 0, len(products))
		for _, p := range products {
			out = append(out, p.Entity())
		}
		return out, nil
	default:
		return nil, domview.ErrInvalidKind
	}
}

func (s *CatalogSource) Categories(ctx context.Context) ([]filter.Category, error) {
	categories, err := s.categories.List(ctx, domcategory.ListFilter{})
	if err != nil {
		return nil, err
	}
	out := make([]filter.Category, 0, len(categories))
	for _, c := range categories {
		out = append(out, c.Filter())
	}
	return out, nil
}
