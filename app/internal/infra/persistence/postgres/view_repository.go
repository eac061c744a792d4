package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domview "example.com/solar-directory/app/internal/domain/view"
)

const viewsSchema = `
    CREATE TABLE IF NOT EXISTS saved_views (
        id          UUID PRIMARY KEY,
        kind        TEXT NOT NULL,
        query       TEXT NOT NULL DEFAULT '',
        created_at  TIMESTAMPTZ NOT NULL,
        updated_at  TIMESTAMPTZ NOT NULL
    )
`

type ViewRepository struct {
	pool *pgxpool.Pool
}

func NewViewRepository(pool *pgxpool.Pool) *ViewRepository {
	return &ViewRepository{pool: pool}
}

func (r *ViewRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, viewsSchema); err != nil {
		return fmt.Errorf("create saved_views: %w", err)
	}
	return nil
}

func (r *ViewRepository) Create(ctx context.Context, v *domview.SavedView) (*domview.SavedView, error) {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO saved_views (id, kind, query, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
    `, v.ID, string(v.Kind), v.Query, v.CreatedAt, v.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *ViewRepository) GetByID(ctx context.Context, id string) (*domview.SavedView, error) {
	row := r.pool.QueryRow(ctx, `
        SELECT id::text, kind, query, created_at, updated_at
        FROM saved_views WHERE id = $1
    `, id)

	var (
		v    domview.SavedView
		kind string
	)
	if err := row.Scan(&v.ID, &kind, &v.Query, &v.CreatedAt, &v.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domview.ErrViewNotFound
		}
		return nil, err
	}
	v.Kind = domview.Kind(kind)
	return &v, nil
}

func (r *ViewRepository) Upsert(ctx context.Context, v *domview.SavedView) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO saved_views (id, kind, query, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (id) DO UPDATE SET query = EXCLUDED.query, updated_at = EXCLUDED.updated_at
    `, v.ID, string(v.Kind), v.Query, v.CreatedAt, v.UpdatedAt)
	return err
}
