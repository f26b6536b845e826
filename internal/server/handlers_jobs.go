package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/jobtracker/internal/db"
	"github.com/jonathan/jobtracker/internal/types"
)

// pathUUID parses a UUID path segment. Writes the 400 itself on failure.
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid id: "+r.PathValue(name))
		return uuid.Nil, false
	}
	return id, true
}

// handleListJobs returns jobs with optional ?q= search, ?status= filter and
// ?sort= order.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	opts := db.ListJobsOptions{
		Query:  r.URL.Query().Get("q"),
		Status: r.URL.Query().Get("status"),
		Sort:   r.URL.Query().Get("sort"),
	}

	jobs, err := s.db.ListJobs(r.Context(), opts)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.okResponse(w, http.StatusOK, jobs)
}

func parseOptionalUUID(s *string) (*uuid.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// handleCreateJob creates a job application record.
func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var req types.CreateJobRequest
	if !s.readJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	companyID, err := parseOptionalUUID(req.CompanyID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid companyId")
		return
	}
	contactID, err := parseOptionalUUID(req.ContactID)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid contactId")
		return
	}

	job := &db.Job{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Note:        req.Note,
		CompanyID:   companyID,
		ContactID:   contactID,
	}
	if err := s.db.CreateJob(r.Context(), job); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.okResponse(w, http.StatusCreated, job)
}

// handleGetJob returns a single job with joined company and contact fields.
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	job, err := s.db.GetJobJoined(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}
	s.okResponse(w, http.StatusOK, job)
}

// handleUpdateJob applies a partial update. Absent fields stay untouched; an
// empty companyId/contactId detaches the reference.
func (s *Server) handleUpdateJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req types.UpdateJobRequest
	if !s.readJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := s.db.GetJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}

	if req.Title != nil {
		job.Title = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		job.Description = req.Description
	}
	if req.Note != nil {
		job.Note = req.Note
	}
	if req.Applied != nil {
		job.Applied = *req.Applied
	}
	if req.Answer != nil {
		job.Answer = *req.Answer
	}
	if req.CompanyID != nil {
		companyID, err := parseOptionalUUID(req.CompanyID)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid companyId")
			return
		}
		job.CompanyID = companyID
	}
	if req.ContactID != nil {
		contactID, err := parseOptionalUUID(req.ContactID)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "invalid contactId")
			return
		}
		job.ContactID = contactID
	}

	if _, err := s.db.UpdateJob(r.Context(), job); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.okResponse(w, http.StatusOK, job)
}

// handleDeleteJob removes a job.
func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := s.db.DeleteJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}
	s.okResponse(w, http.StatusOK, map[string]bool{"deleted": true})
}

// handleToggleJob flips the applied or answer flag.
func (s *Server) handleToggleJob(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req types.ToggleJobRequest
	if !s.readJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	job, err := s.db.GetJob(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}

	switch req.Field {
	case "applied":
		job.Applied = !job.Applied
	case "answer":
		job.Answer = !job.Answer
	}

	if _, err := s.db.UpdateJob(r.Context(), job); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.okResponse(w, http.StatusOK, job)
}

// handleJobClipboard renders a plain-text markdown summary of a job, suitable
// for pasting into notes or messages.
func (s *Server) handleJobClipboard(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	job, err := s.db.GetJobJoined(r.Context(), id)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if job == nil {
		s.errorResponse(w, http.StatusNotFound, "job not found")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(clipboardText(job)))
}

// clipboardText builds the markdown clipboard summary.
func clipboardText(j *db.JobJoined) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n", j.Title)

	add := func(label string, value *string) {
		if value != nil && *value != "" {
			fmt.Fprintf(&sb, "- %s: %s\n", label, *value)
		}
	}
	add("Firma", j.CompanyName)
	add("Ort", j.CompanyCity)
	add("Website", j.CompanyWebsite)
	add("Kontakt", j.ContactName)
	add("E-Mail", j.ContactEmail)
	add("Telefon", j.ContactPhone)

	fmt.Fprintf(&sb, "- Beworben: %s\n", jaNein(j.Applied))
	fmt.Fprintf(&sb, "- Antwort: %s\n", jaNein(j.Answer))

	if j.Note != nil && *j.Note != "" {
		sb.WriteString("\n## Notiz\n" + *j.Note + "\n")
	}
	if j.Description != nil && *j.Description != "" {
		sb.WriteString("\n## Beschreibung\n" + *j.Description + "\n")
	}

	return sb.String()
}

func jaNein(b bool) string {
	if b {
		return "ja"
	}
	return "nein"
}
