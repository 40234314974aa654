package api

import (
	"net/http"
	"strings"

	"github.com/bher20/ecoagua/internal/tariffs"
)

// handleTariffList serves GET /api/v1/tariffs.
func (s *server) handleTariffList(w http.ResponseWriter, r *http.Request) {
	const path = "/api/v1/tariffs"
	defer track(path)()

	if r.Method != http.MethodGet {
		methodNotAllowed(w, http.MethodGet)
		return
	}
	list, err := s.tariffs.List(r.Context())
	if err != nil {
		s.writeError(w, path, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"tariffs": list})
}

// handleTariff serves GET, PUT and DELETE /api/v1/tariffs/{key}.
func (s *server) handleTariff(w http.ResponseWriter, r *http.Request) {
	const path = "/api/v1/tariffs/{key}"
	defer track(path)()

	key := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/v1/tariffs/"), "/")
	if key == "" || strings.Contains(key, "/") {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		t, err := s.tariffs.Get(r.Context(), key)
		if err != nil {
			s.writeError(w, path, err)
			return
		}
		s.writeJSON(w, http.StatusOK, t)

	case http.MethodPut:
		var d tariffs.Descriptor
		if err := decodeJSON(w, r, &d); err != nil {
			s.writeError(w, path, err)
			return
		}
		d.Key = key
		t, err := s.tariffs.Upsert(r.Context(), d)
		if err != nil {
			s.writeError(w, path, err)
			return
		}
		s.writeJSON(w, http.StatusOK, t)

	case http.MethodDelete:
		if err := s.tariffs.Delete(r.Context(), key); err != nil {
			s.writeError(w, path, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		methodNotAllowed(w, "GET, PUT, DELETE")
	}
}
