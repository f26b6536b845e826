package types

import "github.com/go-playground/validator/v10"

// ImportCompanyRequest carries either a saved HTML document or a URL to fetch.
// Exactly one of the two should be set; the handler prefers html when both
// are present.
type ImportCompanyRequest struct {
	HTML string `json:"html,omitempty"`
	URL  string `json:"url,omitempty" validate:"omitempty,url"`
}

// ImportJobRequest carries a saved job-posting HTML document.
type ImportJobRequest struct {
	HTML string `json:"html" validate:"required,min=1"`
}

// Validate validates the ImportCompanyRequest using the validator.
func (r *ImportCompanyRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ImportJobRequest using the validator.
func (r *ImportJobRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
