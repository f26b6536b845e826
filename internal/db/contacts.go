package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const contactColumns = `id, company_id, name, email, phone, note, created_at, updated_at`

func scanContact(row pgx.Row) (*Contact, error) {
	var c Contact
	err := row.Scan(&c.ID, &c.CompanyID, &c.Name, &c.Email, &c.Phone, &c.Note, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateContact inserts a contact person for a company.
func (db *DB) CreateContact(ctx context.Context, c *Contact) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO contacts (id, company_id, name, email, phone, note)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		c.ID, c.CompanyID, c.Name, c.Email, c.Phone, c.Note,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// UpdateContact writes all mutable fields of an existing contact. Returns
// false when no row matched.
func (db *DB) UpdateContact(ctx context.Context, c *Contact) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE contacts SET
			name = $1, email = $2, phone = $3, note = $4, updated_at = now()
		 WHERE id = $5 AND company_id = $6`,
		c.Name, c.Email, c.Phone, c.Note, c.ID, c.CompanyID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update contact: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteContact removes a contact scoped to its company. Returns false when
// no row matched.
func (db *DB) DeleteContact(ctx context.Context, companyID, contactID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM contacts WHERE id = $1 AND company_id = $2`, contactID, companyID)
	if err != nil {
		return false, fmt.Errorf("failed to delete contact: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetContact retrieves a contact by ID. Returns (nil, nil) when not found.
func (db *DB) GetContact(ctx context.Context, id uuid.UUID) (*Contact, error) {
	c, err := scanContact(db.pool.QueryRow(ctx,
		`SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return c, nil
}

// ListContactsForCompany returns a company's contacts ordered by name,
// case-insensitively.
func (db *DB) ListContactsForCompany(ctx context.Context, companyID uuid.UUID) ([]Contact, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+contactColumns+` FROM contacts
		 WHERE company_id = $1 ORDER BY lower(name) ASC`, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	contacts := []Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, *c)
	}
	return contacts, rows.Err()
}
