package company

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (*Company, error)
	List(ctx context.Context, filter ListFilter) ([]*Company, error)
}
