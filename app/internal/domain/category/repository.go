package category

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Category, error)
	List(ctx context.Context, filter ListFilter) ([]*Category, error)
}
