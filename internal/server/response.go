package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// maxBodyBytes caps JSON request bodies. Saved HTML pages are large but a
// document over this size is not a job posting.
const maxBodyBytes = 2 << 20 // 2MB

// envelope is the uniform response wrapper: {"ok":true,"data":...} on
// success, {"ok":false,"error":"..."} on failure.
type envelope struct {
	OK    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// okResponse writes a success envelope.
func (s *Server) okResponse(w http.ResponseWriter, status int, data any) {
	s.writeJSON(w, status, envelope{OK: true, Data: data})
}

// errorResponse writes a failure envelope.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, envelope{OK: false, Error: message})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// readJSON decodes a size-limited JSON request body into dst. Returns false
// after writing the error response itself.
func (s *Server) readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.errorResponse(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}
