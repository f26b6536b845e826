package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const companyColumns = `id, name, website, street, city, note, created_at, updated_at`

func scanCompany(row pgx.Row) (*Company, error) {
	var c Company
	err := row.Scan(&c.ID, &c.Name, &c.Website, &c.Street, &c.City, &c.Note, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateCompany inserts a company and fills in its generated fields. Returns
// ErrDuplicateName when the name is already taken (case-insensitively).
func (db *DB) CreateCompany(ctx context.Context, c *Company) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO companies (id, name, website, street, city, note)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		c.ID, c.Name, c.Website, c.Street, c.City, c.Note,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateName
		}
		return fmt.Errorf("failed to create company: %w", err)
	}
	return nil
}

// UpdateCompany writes all mutable fields of an existing company. Returns
// false when no row matched, ErrDuplicateName on a rename collision.
func (db *DB) UpdateCompany(ctx context.Context, c *Company) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE companies SET
			name = $1, website = $2, street = $3, city = $4, note = $5,
			updated_at = now()
		 WHERE id = $6`,
		c.Name, c.Website, c.Street, c.City, c.Note, c.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return false, ErrDuplicateName
		}
		return false, fmt.Errorf("failed to update company: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteCompany removes a company. Contacts cascade; jobs keep running with
// their company reference nulled. Returns false when no row matched.
func (db *DB) DeleteCompany(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete company: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetCompany retrieves a company by ID. Returns (nil, nil) when not found.
func (db *DB) GetCompany(ctx context.Context, id uuid.UUID) (*Company, error) {
	c, err := scanCompany(db.pool.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return c, nil
}

// GetCompanyByName retrieves a company by name, case-insensitively. Returns
// (nil, nil) when not found.
func (db *DB) GetCompanyByName(ctx context.Context, name string) (*Company, error) {
	c, err := scanCompany(db.pool.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE lower(name) = lower($1)`, name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get company by name: %w", err)
	}
	return c, nil
}

// ListCompanies returns all companies ordered by name, case-insensitively.
func (db *DB) ListCompanies(ctx context.Context) ([]Company, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+companyColumns+` FROM companies ORDER BY lower(name) ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	companies := []Company{}
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, *c)
	}
	return companies, rows.Err()
}

// UpsertCompanyByName inserts the company or, when a company with the same
// name exists, overwrites its detail fields. Used by the CSV import.
func (db *DB) UpsertCompanyByName(ctx context.Context, c *Company) error {
	existing, err := db.GetCompanyByName(ctx, c.Name)
	if err != nil {
		return err
	}
	if existing == nil {
		return db.CreateCompany(ctx, c)
	}

	c.ID = existing.ID
	if _, err := db.UpdateCompany(ctx, c); err != nil {
		return err
	}
	return nil
}
