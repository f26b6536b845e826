package server

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"

	"github.com/jonathan/jobtracker/internal/db"
)

var csvHeader = []string{"name", "website", "street", "city", "note"}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// handleExportCompaniesCSV streams all companies as CSV.
func (s *Server) handleExportCompaniesCSV(w http.ResponseWriter, r *http.Request) {
	companies, err := s.db.ListCompanies(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="companies.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write(csvHeader)
	for _, c := range companies {
		_ = cw.Write([]string{c.Name, deref(c.Website), deref(c.Street), deref(c.City), deref(c.Note)})
	}
	cw.Flush()
}

// handleImportCompaniesCSV ingests a CSV in the export format, upserting each
// row by company name. Rows without a name are skipped and counted.
func (s *Server) handleImportCompaniesCSV(w http.ResponseWriter, r *http.Request) {
	reader := csv.NewReader(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid CSV: "+err.Error())
		return
	}
	if len(records) == 0 {
		s.errorResponse(w, http.StatusBadRequest, "empty CSV")
		return
	}

	// map the header so column order does not matter
	index := map[string]int{}
	for i, col := range records[0] {
		index[strings.ToLower(strings.TrimSpace(col))] = i
	}
	if _, ok := index["name"]; !ok {
		s.errorResponse(w, http.StatusBadRequest, "CSV is missing the name column")
		return
	}

	field := func(row []string, col string) *string {
		i, ok := index[col]
		if !ok || i >= len(row) {
			return nil
		}
		v := strings.TrimSpace(row[i])
		if v == "" {
			return nil
		}
		return &v
	}

	imported, skipped := 0, 0
	for _, row := range records[1:] {
		name := field(row, "name")
		if name == nil {
			skipped++
			continue
		}

		company := &db.Company{
			Name:    *name,
			Website: field(row, "website"),
			Street:  field(row, "street"),
			City:    field(row, "city"),
			Note:    field(row, "note"),
		}
		if err := s.db.UpsertCompanyByName(r.Context(), company); err != nil {
			s.errorResponse(w, HTTPStatus(err), fmt.Sprintf("row %q: %v", *name, err))
			return
		}
		imported++
	}

	s.okResponse(w, http.StatusOK, map[string]int{"imported": imported, "skipped": skipped})
}
