package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const jobColumns = `id, title, description, note, applied, answer, company_id, contact_id, created_at, updated_at`

func scanJob(row pgx.Row) (*Job, error) {
	var j Job
	err := row.Scan(&j.ID, &j.Title, &j.Description, &j.Note, &j.Applied, &j.Answer,
		&j.CompanyID, &j.ContactID, &j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// CreateJob inserts a job application record.
func (db *DB) CreateJob(ctx context.Context, j *Job) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}

	err := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (id, title, description, note, applied, answer, company_id, contact_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at`,
		j.ID, j.Title, j.Description, j.Note, j.Applied, j.Answer, j.CompanyID, j.ContactID,
	).Scan(&j.CreatedAt, &j.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}

// UpdateJob writes all mutable fields of an existing job. Returns false when
// no row matched.
func (db *DB) UpdateJob(ctx context.Context, j *Job) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`UPDATE jobs SET
			title = $1, description = $2, note = $3,
			applied = $4, answer = $5,
			company_id = $6, contact_id = $7,
			updated_at = now()
		 WHERE id = $8`,
		j.Title, j.Description, j.Note, j.Applied, j.Answer, j.CompanyID, j.ContactID, j.ID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update job: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteJob removes a job. Returns false when no row matched.
func (db *DB) DeleteJob(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete job: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetJob retrieves a job by ID without the joined display fields. Returns
// (nil, nil) when not found.
func (db *DB) GetJob(ctx context.Context, id uuid.UUID) (*Job, error) {
	j, err := scanJob(db.pool.QueryRow(ctx,
		`SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

const joinedSelect = `
	SELECT
		j.id, j.title, j.description, j.note, j.applied, j.answer,
		j.company_id, j.contact_id, j.created_at, j.updated_at,
		c.name  AS company_name,
		c.website AS company_website,
		c.city  AS company_city,
		ct.name AS contact_name,
		ct.email AS contact_email,
		ct.phone AS contact_phone
	FROM jobs j
	LEFT JOIN companies c ON c.id = j.company_id
	LEFT JOIN contacts ct ON ct.id = j.contact_id`

func scanJobJoined(row pgx.Row) (*JobJoined, error) {
	var j JobJoined
	err := row.Scan(&j.ID, &j.Title, &j.Description, &j.Note, &j.Applied, &j.Answer,
		&j.CompanyID, &j.ContactID, &j.CreatedAt, &j.UpdatedAt,
		&j.CompanyName, &j.CompanyWebsite, &j.CompanyCity,
		&j.ContactName, &j.ContactEmail, &j.ContactPhone)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// GetJobJoined retrieves a job with its company and contact display fields.
// Returns (nil, nil) when not found.
func (db *DB) GetJobJoined(ctx context.Context, id uuid.UUID) (*JobJoined, error) {
	j, err := scanJobJoined(db.pool.QueryRow(ctx, joinedSelect+` WHERE j.id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

// buildJobsQuery assembles the filtered, ordered list query. Split out so the
// SQL assembly is testable without a database.
func buildJobsQuery(opts ListJobsOptions) (string, []any) {
	var conditions []string
	var args []any

	if q := strings.TrimSpace(opts.Query); q != "" {
		args = append(args, "%"+q+"%")
		p := fmt.Sprintf("$%d", len(args))
		conditions = append(conditions, `(
		j.title ILIKE `+p+` OR j.description ILIKE `+p+` OR j.note ILIKE `+p+` OR
		c.name ILIKE `+p+` OR c.city ILIKE `+p+` OR ct.name ILIKE `+p+`
	)`)
	}

	switch opts.Status {
	case StatusApplied:
		conditions = append(conditions, `j.applied`)
	case StatusNotApplied:
		conditions = append(conditions, `NOT j.applied`)
	case StatusAnswered:
		conditions = append(conditions, `j.answer`)
	case StatusNoAnswer:
		conditions = append(conditions, `NOT j.answer`)
	}

	order := `j.created_at DESC`
	switch opts.Sort {
	case SortTitle:
		order = `lower(j.title) ASC`
	case SortCompany:
		order = `lower(c.name) ASC NULLS LAST`
	}

	sql := joinedSelect
	if len(conditions) > 0 {
		sql += "\n\tWHERE " + strings.Join(conditions, " AND ")
	}
	sql += "\n\tORDER BY " + order

	return sql, args
}

// ListJobs returns jobs matching the given search, filter and sort options,
// each joined with company and contact display fields.
func (db *DB) ListJobs(ctx context.Context, opts ListJobsOptions) ([]JobJoined, error) {
	sql, args := buildJobsQuery(opts)

	rows, err := db.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []JobJoined{}
	for rows.Next() {
		j, err := scanJobJoined(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, *j)
	}
	return jobs, rows.Err()
}
