package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	domproduct "example.com/solar-directory/app/internal/domain/product"
)

// Products carry the address of their seller company.
const productSelect = `
        SELECT p.id, p.company_id, p.name, p.description, p.price, p.rating, p.category_id, c.address, p.is_active
        FROM products p
        LEFT JOIN companies c ON c.id = p.company_id
    `

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func scanProduct(row rowScanner) (*domproduct.Product, error) {
	var (
		p           domproduct.Product
		description sql.NullString
		price       sql.NullFloat64
		rating      sql.NullFloat64
		categoryID  sql.NullInt64
		address     sql.NullString
	)
	if err := row.Scan(&p.ID, &p.CompanyID, &p.Name, &description, &price, &rating, &categoryID, &address, &p.IsActive); err != nil {
		return nil, err
	}
	p.Description = description.String
	p.Price = nullFloat(price)
	p.Rating = nullFloat(rating)
	p.CategoryID = nullInt(categoryID)
	p.Address = nullString(address)
	return &p, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*domproduct.Product, error) {
	row := r.db.QueryRowContext(ctx, productSelect+` WHERE p.id = ?`, id)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domproduct.ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) List(ctx context.Context, filter domproduct.ListFilter) ([]*domproduct.Product, error) {
	query := productSelect
	var clauses []string
	var args []any

	if filter.CategoryID != nil {
		clauses = append(clauses, "p.category_id = ?")
		args = append(args, *filter.CategoryID)
	}
	if filter.CompanyID != nil {
		clauses = append(clauses, "p.company_id = ?")
		args = append(args, *filter.CompanyID)
	}
	if filter.OnlyActive {
		clauses = append(clauses, "p.is_active = 1")
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY p.id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*domproduct.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
