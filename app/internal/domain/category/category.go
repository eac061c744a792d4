package category

import "example.com/solar-directory/app/internal/domain/filter"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

type Category struct {
	ID          int64
	Name        string
	Slug        string
	Description string
	Featured    bool
	Status      Status
}

type ListFilter struct {
	OnlyActive   bool
	OnlyFeatured bool
}

func (c *Category) Filter() filter.Category {
	return filter.Category{
		ID:       c.ID,
		Name:     c.Name,
		Featured: c.Featured,
		Status:   filter.CategoryStatus(c.Status),
	}
}
