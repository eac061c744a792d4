package company

import "example.com/solar-directory/app/internal/domain/filter"

// Company is a directory listing. Address is free text following the
// "street, city, state" convention.
type Company struct {
	ID          int64
	Name        string
	Description string
	Address     *string
	CategoryID  *int64
	Rating      *float64
	Website     string
	Phone       string
	IsActive    bool
}

type ListFilter struct {
	CategoryID *int64
	OnlyActive bool
}

func (c *Company) Entity() filter.Entity {
	return filter.Entity{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Address:     filter.RawFrom(c.Address),
		CategoryID:  c.CategoryID,
		Rating:      filter.RawFrom(c.Rating),
	}
}
