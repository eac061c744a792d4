package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	domcategory "example.com/solar-directory/app/internal/domain/category"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func scanCategory(row rowScanner) (*domcategory.Category, error) {
	var (
		c           domcategory.Category
		description sql.NullString
		status      string
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &description, &c.Featured, &status); err != nil {
		return nil, err
	}
	c.Description = description.String
	c.Status = domcategory.Status(strings.ToLower(status))
	if !c.Status.IsValid() {
		return nil, fmt.Errorf("category %d: %w", c.ID, domcategory.ErrCategoryInvalidStatus)
	}
	return &c, nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domcategory.Category, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, name, slug, description, featured, status
        FROM categories
        WHERE id = ?
    `, id)

	c, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domcategory.ErrCategoryNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CategoryRepository) List(ctx context.Context, filter domcategory.ListFilter) ([]*domcategory.Category, error) {
	query := `SELECT id, name, slug, description, featured, status FROM categories`
	var clauses []string
	if filter.OnlyActive {
		clauses = append(clauses, "status = 'active'")
	}
	if filter.OnlyFeatured {
		clauses = append(clauses, "featured = 1")
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domcategory.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
