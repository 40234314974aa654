package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecoagua_requests_total",
			Help: "Total number of API requests per path",
		},
		[]string{"path"},
	)

	RequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ecoagua_request_duration_seconds",
			Help:    "Request duration in seconds per path",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	RequestErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecoagua_request_errors_total",
			Help: "Total number of error responses per path and code",
		},
		[]string{"path", "code"},
	)
)

var (
	ReportsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecoagua_reports_generated_total",
			Help: "Reports computed, by outcome",
		},
		[]string{"outcome"},
	)

	DocumentsRenderedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ecoagua_documents_rendered_total",
			Help: "Documents rendered per format",
		},
		[]string{"format"},
	)

	RenderDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ecoagua_render_duration_seconds",
			Help:    "Document render duration in seconds per format",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"format"},
	)

	EstimatedConsumptionM3 = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ecoagua_estimated_consumption_m3",
			Help:    "Estimated monthly building consumption per report",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)
)

// ObserveRender records one rendered document.
func ObserveRender(format string, startedAt time.Time) {
	RenderDurationSeconds.WithLabelValues(format).Observe(time.Since(startedAt).Seconds())
	DocumentsRenderedTotal.WithLabelValues(format).Inc()
}
