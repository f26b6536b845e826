package db

import (
	"time"

	"github.com/google/uuid"
)

// Company represents an employer record.
type Company struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Website   *string   `json:"website,omitempty"`
	Street    *string   `json:"street,omitempty"`
	City      *string   `json:"city,omitempty"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CompanyWithContacts is a company together with its contact persons, used by
// the detail endpoint.
type CompanyWithContacts struct {
	Company
	Contacts []Contact `json:"contacts"`
}

// Contact represents a contact person at a company.
type Contact struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Job represents a tracked job application.
type Job struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Note        *string    `json:"note,omitempty"`
	Applied     bool       `json:"applied"`
	Answer      bool       `json:"answer"`
	CompanyID   *uuid.UUID `json:"company_id,omitempty"`
	ContactID   *uuid.UUID `json:"contact_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// JobJoined is a job row joined with display fields from its company and
// contact, as returned by the list and detail endpoints.
type JobJoined struct {
	Job
	CompanyName    *string `json:"company_name,omitempty"`
	CompanyWebsite *string `json:"company_website,omitempty"`
	CompanyCity    *string `json:"company_city,omitempty"`
	ContactName    *string `json:"contact_name,omitempty"`
	ContactEmail   *string `json:"contact_email,omitempty"`
	ContactPhone   *string `json:"contact_phone,omitempty"`
}

// Job list status filters.
const (
	StatusApplied    = "applied"
	StatusNotApplied = "not-applied"
	StatusAnswered   = "answered"
	StatusNoAnswer   = "no-answer"
)

// Job list sort orders. The default (empty) sorts newest first.
const (
	SortTitle   = "title"
	SortCompany = "company"
)

// ListJobsOptions narrows and orders the job list. All fields optional.
type ListJobsOptions struct {
	Query  string // free-text search over job, company and contact fields
	Status string // one of the Status constants, or empty
	Sort   string // one of the Sort constants, or empty
}
