package server

import (
	"net/http"

	"github.com/jonathan/jobtracker/internal/types"
)

// handleLogin verifies the admin credentials and issues a JWT.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if s.jwtService == nil || s.admin == nil {
		err := &ErrAuthDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.LoginRequest
	if !s.readJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if !s.admin.Verify(req.Email, req.Password) {
		err := &ErrInvalidCredentials{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	token, expiresAt, err := s.jwtService.GenerateToken(req.Email)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	s.okResponse(w, http.StatusOK, types.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	})
}
