package view

import "context"

type Repository interface {
	Create(ctx context.Context, v *SavedView) (*SavedView, error)
	GetByID(ctx context.Context, id string) (*SavedView, error)
	// Upsert stores the latest query for id, creating the row if needed.
	Upsert(ctx context.Context, v *SavedView) error
}
