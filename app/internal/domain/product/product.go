package product

import "example.com/solar-directory/app/internal/domain/filter"

// Product is a catalog item. Address is copied from the seller company.
type Product struct {
	ID          int64
	CompanyID   int64
	Name        string
	Description string
	Price       *float64
	Rating      *float64
	CategoryID  *int64
	Address     *string
	IsActive    bool
}

type ListFilter struct {
	CategoryID *int64
	CompanyID  *int64
	OnlyActive bool
}

func (p *Product) Entity() filter.Entity {
	return filter.Entity{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Address:     filter.RawFrom(p.Address),
		CategoryID:  p.CategoryID,
		Rating:      filter.RawFrom(p.Rating),
		Price:       filter.RawFrom(p.Price),
	}
}
