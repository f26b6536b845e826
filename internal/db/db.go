// Package db provides PostgreSQL storage for companies, contacts and job
// applications.
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps a PostgreSQL connection pool
type DB struct {
	pool *pgxpool.Pool
}

// ErrDuplicateName is returned when a company insert or rename collides with
// an existing name. Company names are unique case-insensitively.
var ErrDuplicateName = errors.New("company name already exists")

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS companies (
	id         uuid PRIMARY KEY,
	name       text NOT NULL,
	website    text,
	street     text,
	city       text,
	note       text,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now()
);

CREATE UNIQUE INDEX IF NOT EXISTS companies_name_lower_idx
	ON companies (lower(name));

CREATE TABLE IF NOT EXISTS contacts (
	id         uuid PRIMARY KEY,
	company_id uuid NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
	name       text NOT NULL,
	email      text,
	phone      text,
	note       text,
	created_at timestamptz NOT NULL DEFAULT now(),
	updated_at timestamptz NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS contacts_company_idx ON contacts (company_id);

CREATE TABLE IF NOT EXISTS jobs (
	id          uuid PRIMARY KEY,
	title       text NOT NULL,
	description text,
	note        text,
	applied     boolean NOT NULL DEFAULT false,
	answer      boolean NOT NULL DEFAULT false,
	company_id  uuid REFERENCES companies(id) ON DELETE SET NULL,
	contact_id  uuid REFERENCES contacts(id) ON DELETE SET NULL,
	created_at  timestamptz NOT NULL DEFAULT now(),
	updated_at  timestamptz NOT NULL DEFAULT now()
);
`

// Migrate bootstraps the schema. Idempotent; safe to run on every startup.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
