// Package server provides the HTTP REST API for the job tracker.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/jobtracker/internal/db"
	"github.com/jonathan/jobtracker/internal/importer"
)

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrAuthDisabled indicates login was attempted with no admin account
// configured.
type ErrAuthDisabled struct{}

func (e *ErrAuthDisabled) Error() string {
	return "authentication is not configured"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		invalidCredentials *ErrInvalidCredentials
		authDisabled       *ErrAuthDisabled
		validation         *ErrValidation
		invalidDomain      *importer.InvalidSourceDomainError
		fetchErr           *importer.FetchError
	)

	switch {
	case errors.As(err, &invalidCredentials):
		return http.StatusUnauthorized
	case errors.As(err, &authDisabled):
		return http.StatusServiceUnavailable
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &invalidDomain):
		return http.StatusBadRequest
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	case errors.Is(err, db.ErrDuplicateName):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
