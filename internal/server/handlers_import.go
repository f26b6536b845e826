package server

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/jonathan/jobtracker/internal/importer"
	"github.com/jonathan/jobtracker/internal/types"
)

// handleImportCompany parses a Glassdoor company page. The caller sends
// either a saved HTML document or a URL to fetch; html wins when both are
// present. Parsing itself never fails, so a best-effort record always comes
// back for the html path.
func (s *Server) handleImportCompany(w http.ResponseWriter, r *http.Request) {
	var req types.ImportCompanyRequest
	if !s.readJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	switch {
	case strings.TrimSpace(req.HTML) != "":
		profile := importer.ParseCompanyProfile(req.HTML, req.URL)
		s.okResponse(w, http.StatusOK, profile)

	case strings.TrimSpace(req.URL) != "":
		ctx, cancel := context.WithTimeout(r.Context(), s.fetchTimeout)
		defer cancel()

		profile, err := importer.FetchAndParseCompanyProfile(ctx, req.URL)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		s.okResponse(w, http.StatusOK, profile)

	default:
		s.errorResponse(w, http.StatusBadRequest, "either html or url is required")
	}
}

// handleImportJobPosting parses a saved job-posting page. Accepts the JSON
// envelope {"html": ...} or a raw text/html body.
func (s *Server) handleImportJobPosting(w http.ResponseWriter, r *http.Request) {
	var html string

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "text/html") || strings.HasPrefix(contentType, "text/plain") {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		html = string(body)
	} else {
		var req types.ImportJobRequest
		if !s.readJSON(w, r, &req) {
			return
		}
		html = req.HTML
	}

	if strings.TrimSpace(html) == "" {
		s.errorResponse(w, http.StatusBadRequest, "html is required")
		return
	}

	s.okResponse(w, http.StatusOK, importer.ParseJobPosting(html))
}
