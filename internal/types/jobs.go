// Package types provides request DTOs for the job tracker API.
package types

import "github.com/go-playground/validator/v10"

// CreateJobRequest represents the request to create a job application record.
// Only the title is required; everything else can be filled in later.
type CreateJobRequest struct {
	Title       string  `json:"jobTitle" validate:"required,min=1"`
	Description *string `json:"jobDescription,omitempty"`
	Note        *string `json:"jobNote,omitempty"`
	CompanyID   *string `json:"companyId,omitempty" validate:"omitempty,uuid4"`
	ContactID   *string `json:"contactId,omitempty" validate:"omitempty,uuid4"`
}

// UpdateJobRequest represents a partial update. Nil fields are left untouched;
// a present empty string clears the column.
type UpdateJobRequest struct {
	Title       *string `json:"jobTitle,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"jobDescription,omitempty"`
	Note        *string `json:"jobNote,omitempty"`
	Applied     *bool   `json:"applied,omitempty"`
	Answer      *bool   `json:"answer,omitempty"`
	CompanyID   *string `json:"companyId,omitempty" validate:"omitempty,uuid4"`
	ContactID   *string `json:"contactId,omitempty" validate:"omitempty,uuid4"`
}

// ToggleJobRequest flips one of the job's boolean flags.
type ToggleJobRequest struct {
	Field string `json:"field" validate:"required,oneof=applied answer"`
}

// Validate validates the CreateJobRequest using the validator.
func (r *CreateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateJobRequest using the validator.
func (r *UpdateJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ToggleJobRequest using the validator.
func (r *ToggleJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
