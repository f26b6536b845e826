package types

import "github.com/go-playground/validator/v10"

// CreateCompanyRequest represents the request to create a company record.
type CreateCompanyRequest struct {
	Name    string  `json:"companyName" validate:"required,min=1"`
	Website *string `json:"companyWebsite,omitempty"`
	Street  *string `json:"companyStreet,omitempty"`
	City    *string `json:"companyCity,omitempty"`
	Note    *string `json:"companyNote,omitempty"`
}

// UpdateCompanyRequest represents a partial company update. Nil fields are
// left untouched.
type UpdateCompanyRequest struct {
	Name    *string `json:"companyName,omitempty" validate:"omitempty,min=1"`
	Website *string `json:"companyWebsite,omitempty"`
	Street  *string `json:"companyStreet,omitempty"`
	City    *string `json:"companyCity,omitempty"`
	Note    *string `json:"companyNote,omitempty"`
}

// CreateContactRequest represents the request to add a contact person to a
// company.
type CreateContactRequest struct {
	Name  string  `json:"contactName" validate:"required,min=1"`
	Email *string `json:"contactEmail,omitempty" validate:"omitempty,email"`
	Phone *string `json:"contactPhone,omitempty"`
	Note  *string `json:"contactNote,omitempty"`
}

// UpdateContactRequest represents a partial contact update.
type UpdateContactRequest struct {
	Name  *string `json:"contactName,omitempty" validate:"omitempty,min=1"`
	Email *string `json:"contactEmail,omitempty" validate:"omitempty,email"`
	Phone *string `json:"contactPhone,omitempty"`
	Note  *string `json:"contactNote,omitempty"`
}

// Validate validates the CreateCompanyRequest using the validator.
func (r *CreateCompanyRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateCompanyRequest using the validator.
func (r *UpdateCompanyRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateContactRequest using the validator.
func (r *CreateContactRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateContactRequest using the validator.
func (r *UpdateContactRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
