package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/bher20/ecoagua/internal/reporting"
	"github.com/bher20/ecoagua/internal/storage"
	"github.com/bher20/ecoagua/internal/tariffs"
	"github.com/bher20/ecoagua/internal/ui"
)

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Reports *reporting.Service
	Tariffs *tariffs.Service
	Store   storage.Storage
	Log     *zap.Logger
}

type server struct {
	reports *reporting.Service
	tariffs *tariffs.Service
	store   storage.Storage
	log     *zap.Logger
}

// NewMux constructs the HTTP mux, wiring in the report and tariff
// endpoints, the web form, metrics, and health endpoints.
func NewMux(d Deps) *http.ServeMux {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	s := &server{reports: d.Reports, tariffs: d.Tariffs, store: d.Store, log: log}

	mux := http.NewServeMux()

	// Metrics endpoint.
	mux.Handle("/metrics", promhttp.Handler())

	// Health / readiness / liveness.
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/livez", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("live"))
	})
	mux.HandleFunc("/readyz", s.handleReady)

	// Reports API.
	mux.HandleFunc("/api/v1/reports", s.handleReport)
	mux.HandleFunc("/api/v1/reports/", s.handleReportDocument)

	// Tariff catalog.
	mux.HandleFunc("/api/v1/tariffs", s.handleTariffList)
	mux.HandleFunc("/api/v1/tariffs/", s.handleTariff)

	// Web UI
	mux.Handle("/ui/", http.StripPrefix("/ui/", ui.Handler()))
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.Redirect(w, r, "/ui/", http.StatusFound)
	})

	return mux
}

func (s *server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			s.log.Warn("readyz: storage ping failed", zap.Error(err))
			http.Error(w, "storage not ready", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
