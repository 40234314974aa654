package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/bher20/ecoagua/internal/document"
	"github.com/bher20/ecoagua/internal/intake"
	"github.com/bher20/ecoagua/internal/metrics"
	"github.com/bher20/ecoagua/internal/tariffs"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error    string   `json:"error"`
	Problems []string `json:"problems,omitempty"`
}

// track counts a request and observes its duration when the returned func runs.
func track(path string) func() {
	start := time.Now()
	metrics.RequestsTotal.WithLabelValues(path).Inc()
	return func() {
		metrics.RequestDurationSeconds.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return err
		}
		return &decodeError{err: err}
	}
	if dec.More() {
		return &decodeError{err: errors.New("unexpected data after JSON body")}
	}
	return nil
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("encode response failed", zap.Error(err))
	}
}

// writeError maps err onto a status code, logs, and counts it.
func (s *server) writeError(w http.ResponseWriter, path string, err error) {
	status := http.StatusInternalServerError
	body := errorResponse{Error: "internal error"}

	var verr *intake.ValidationError
	var decErr *decodeError
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
		body = errorResponse{Error: intake.ErrInvalidInput.Error(), Problems: verr.Problems}
	case errors.Is(err, tariffs.ErrTariffNotFound):
		status = http.StatusNotFound
		body = errorResponse{Error: err.Error()}
	case errors.Is(err, tariffs.ErrInvalidTariff), errors.Is(err, document.ErrUnknownFormat):
		status = http.StatusBadRequest
		body = errorResponse{Error: err.Error()}
	case errors.As(err, &maxErr):
		status = http.StatusRequestEntityTooLarge
		body = errorResponse{Error: "request body too large"}
	case errors.As(err, &decErr):
		status = http.StatusBadRequest
		body = errorResponse{Error: "malformed JSON: " + decErr.Error()}
	}

	if status >= http.StatusInternalServerError {
		s.log.Error("request failed", zap.String("path", path), zap.Error(err))
	} else {
		s.log.Info("request rejected", zap.String("path", path), zap.Int("status", status), zap.Error(err))
	}
	metrics.RequestErrorsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
	s.writeJSON(w, status, body)
}

// decodeError marks a request body that could not be decoded.
type decodeError struct{ err error }

func (e *decodeError) Error() string { return e.err.Error() }
func (e *decodeError) Unwrap() error { return e.err }

func methodNotAllowed(w http.ResponseWriter, allow string) {
	w.Header().Set("Allow", allow)
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}
