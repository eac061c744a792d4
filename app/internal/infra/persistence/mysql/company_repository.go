package mysql

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	domcompany "example.com/solar-directory/app/internal/domain/company"
)

const companyColumns = `id, name, description, address, category_id, rating, website, phone, is_active`

type CompanyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (*domcompany.Company, error) {
	var (
		c           domcompany.Company
		description sql.NullString
		address     sql.NullString
		categoryID  sql.NullInt64
		rating      sql.NullFloat64
		website     sql.NullString
		phone       sql.NullString
	)
	if err := row.Scan(&c.ID, &c.Name, &description, &address, &categoryID, &rating, &website, &phone, &c.IsActive); err != nil {
		return nil, err
	}
	c.Description = description.String
	c.Address = nullString(address)
	c.CategoryID = nullInt(categoryID)
	c.Rating = nullFloat(rating)
	c.Website = website.String
	c.Phone = phone.String
	return &c, nil
}

func (r *CompanyRepository) GetByID(ctx context.Context, id int64) (*domcompany.Company, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = ?`, id)

	c, err := scanCompany(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domcompany.ErrCompanyNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *CompanyRepository) List(ctx context.Context, filter domcompany.ListFilter) ([]*domcompany.Company, error) {
	query := `SELECT ` + companyColumns + ` FROM companies`
	var clauses []string
	var args []any

	if filter.CategoryID != nil {
		clauses = append(clauses, "category_id = ?")
		args = append(args, *filter.CategoryID)
	}
	if filter.OnlyActive {
		clauses = append(clauses, "is_active = 1")
	}

	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*domcompany.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}
