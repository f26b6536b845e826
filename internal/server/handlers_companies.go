package server

import (
	"net/http"
	"strings"

	"github.com/jonathan/jobtracker/internal/db"
	"github.com/jonathan/jobtracker/internal/types"
)

// handleListCompanies returns all companies ordered by name.
func (s *Server) handleListCompanies(w http.ResponseWriter, r *http.Request) {
	companies, err := s.db.ListCompanies(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.okResponse(w, http.StatusOK, companies)
}

// handleCreateCompany creates a company. Names are unique; a collision
// answers 409.
func (s *Server) handleCreateCompany(w http.ResponseWriter, r *http.Request) {
	var req types.CreateCompanyRequest
	if !s.readJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	company := &db.Company{
		Name:    strings.TrimSpace(req.Name),
		Website: req.Website,
		Street:  req.Street,
		City:    req.City,
		Note:    req.Note,
	}
	if err := s.db.CreateCompany(r.Context(), company); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.okResponse(w, http.StatusCreated, company)
}

// handleGetCompany returns a company together with its contacts.
func (s *Server) handleGetCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	company, err := s.db.GetCompany(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if company == nil {
		s.errorResponse(w, http.StatusNotFound, "company not found")
		return
	}

	contacts, err := s.db.ListContactsForCompany(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.okResponse(w, http.StatusOK, db.CompanyWithContacts{
		Company:  *company,
		Contacts: contacts,
	})
}

// handleUpdateCompany applies a partial company update.
func (s *Server) handleUpdateCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req types.UpdateCompanyRequest
	if !s.readJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	company, err := s.db.GetCompany(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if company == nil {
		s.errorResponse(w, http.StatusNotFound, "company not found")
		return
	}

	if req.Name != nil {
		company.Name = strings.TrimSpace(*req.Name)
	}
	if req.Website != nil {
		company.Website = req.Website
	}
	if req.Street != nil {
		company.Street = req.Street
	}
	if req.City != nil {
		company.City = req.City
	}
	if req.Note != nil {
		company.Note = req.Note
	}

	if _, err := s.db.UpdateCompany(r.Context(), company); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.okResponse(w, http.StatusOK, company)
}

// handleDeleteCompany removes a company. Its contacts go with it; jobs keep
// running detached.
func (s *Server) handleDeleteCompany(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := s.db.DeleteCompany(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "company not found")
		return
	}
	s.okResponse(w, http.StatusOK, map[string]bool{"deleted": true})
}
