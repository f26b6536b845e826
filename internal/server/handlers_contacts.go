package server

import (
	"net/http"
	"strings"

	"github.com/jonathan/jobtracker/internal/db"
	"github.com/jonathan/jobtracker/internal/types"
)

// handleListContacts returns the contact persons of a company.
func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	companyID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	contacts, err := s.db.ListContactsForCompany(r.Context(), companyID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.okResponse(w, http.StatusOK, contacts)
}

// handleCreateContact adds a contact person to a company.
func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	companyID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req types.CreateContactRequest
	if !s.readJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	company, err := s.db.GetCompany(r.Context(), companyID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if company == nil {
		s.errorResponse(w, http.StatusNotFound, "company not found")
		return
	}

	contact := &db.Contact{
		CompanyID: companyID,
		Name:      strings.TrimSpace(req.Name),
		Email:     req.Email,
		Phone:     req.Phone,
		Note:      req.Note,
	}
	if err := s.db.CreateContact(r.Context(), contact); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.okResponse(w, http.StatusCreated, contact)
}

// handleUpdateContact applies a partial contact update, scoped to the company
// in the path.
func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	companyID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	contactID, ok := s.pathUUID(w, r, "contactID")
	if !ok {
		return
	}

	var req types.UpdateContactRequest
	if !s.readJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	contact, err := s.db.GetContact(r.Context(), contactID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if contact == nil || contact.CompanyID != companyID {
		s.errorResponse(w, http.StatusNotFound, "contact not found")
		return
	}

	if req.Name != nil {
		contact.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		contact.Email = req.Email
	}
	if req.Phone != nil {
		contact.Phone = req.Phone
	}
	if req.Note != nil {
		contact.Note = req.Note
	}

	if _, err := s.db.UpdateContact(r.Context(), contact); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.okResponse(w, http.StatusOK, contact)
}

// handleDeleteContact removes a contact person.
func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	companyID, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}
	contactID, ok := s.pathUUID(w, r, "contactID")
	if !ok {
		return
	}

	deleted, err := s.db.DeleteContact(r.Context(), companyID, contactID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "contact not found")
		return
	}
	s.okResponse(w, http.StatusOK, map[string]bool{"deleted": true})
}
