package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/bher20/ecoagua/internal/document"
	"github.com/bher20/ecoagua/internal/intake"
)

// handleReport serves POST /api/v1/reports and answers with the computed
// report as JSON.
func (s *server) handleReport(w http.ResponseWriter, r *http.Request) {
	const path = "/api/v1/reports"
	defer track(path)()

	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}

	var req intake.Request
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, path, err)
		return
	}
	res, err := s.reports.Generate(r.Context(), req)
	if err != nil {
		s.writeError(w, path, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res)
}

// handleReportDocument serves POST /api/v1/reports/{format} and answers with
// the rendered document as an attachment.
func (s *server) handleReportDocument(w http.ResponseWriter, r *http.Request) {
	format := strings.ToLower(strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/v1/reports/"), "/"))
	path := "/api/v1/reports/" + format
	if _, err := document.Lookup(format); err != nil {
		// Keep unknown formats out of metric labels.
		path = "/api/v1/reports/unknown"
	}
	defer track(path)()

	if r.Method != http.MethodPost {
		methodNotAllowed(w, http.MethodPost)
		return
	}
	renderer, err := document.Lookup(format)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	var req intake.Request
	if err := decodeJSON(w, r, &req); err != nil {
		s.writeError(w, path, err)
		return
	}
	res, err := s.reports.Generate(r.Context(), req)
	if err != nil {
		s.writeError(w, path, err)
		return
	}
	data, _, err := s.reports.Render(res, renderer.Format())
	if err != nil {
		s.writeError(w, path, err)
		return
	}

	w.Header().Set("Content-Type", renderer.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", document.FileName(renderer)))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("X-Report-ID", res.ID)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
