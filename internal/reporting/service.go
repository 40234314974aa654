package reporting

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bher20/ecoagua/internal/consumption"
	"github.com/bher20/ecoagua/internal/document"
	"github.com/bher20/ecoagua/internal/intake"
	"github.com/bher20/ecoagua/internal/metrics"
)

// Result is the outcome of one reporting run.
type Result struct {
	ID          string              `json:"id"`
	GeneratedAt time.Time           `json:"generated_at"`
	Client      document.Client     `json:"client"`
	PricePerM3  float64             `json:"price_per_m3"`
	Units       int                 `json:"units"`
	Report      consumption.Report  `json:"report"`
	Fields      []consumption.Field `json:"fields"`
}

// Lines lays the result out for a renderer.
func (r *Result) Lines() []document.Line {
	return document.Layout(r.Fields, r.Client)
}

// Service runs reports. It keeps no state between runs.
type Service struct {
	prices intake.PriceResolver
	log    *zap.Logger
	now    func() time.Time
}

// NewService returns a Service. prices may be nil when only inline prices
// are accepted.
func NewService(prices intake.PriceResolver, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{prices: prices, log: log, now: time.Now}
}

// Generate validates req, builds the building and computes its report.
func (s *Service) Generate(ctx context.Context, req intake.Request) (*Result, error) {
	building, err := req.Assemble(ctx, s.prices)
	if err != nil {
		outcome := "error"
		if errors.Is(err, intake.ErrInvalidInput) {
			outcome = "invalid"
		}
		metrics.ReportsGeneratedTotal.WithLabelValues(outcome).Inc()
		return nil, err
	}

	report := building.Report()
	res := &Result{
		ID:          uuid.NewString(),
		GeneratedAt: s.now().UTC(),
		Client:      req.Client,
		PricePerM3:  building.PricePerM3(),
		Units:       len(req.Units),
		Report:      report,
		Fields:      report.Fields(),
	}

	metrics.ReportsGeneratedTotal.WithLabelValues("ok").Inc()
	metrics.EstimatedConsumptionM3.Observe(report.EstimatedM3)
	s.log.Info("report generated",
		zap.String("report_id", res.ID),
		zap.Int("units", res.Units),
		zap.Float64("estimated_m3", report.EstimatedM3),
		zap.Float64("real_m3", report.RealM3),
	)
	return res, nil
}

// Render formats res with the renderer registered for format.
func (s *Service) Render(res *Result, format string) ([]byte, document.Renderer, error) {
	r, err := document.Lookup(format)
	if err != nil {
		return nil, nil, err
	}
	start := time.Now()
	data, err := r.Render(res.Lines())
	if err != nil {
		s.log.Error("render failed", zap.String("report_id", res.ID), zap.String("format", r.Format()), zap.Error(err))
		return nil, nil, err
	}
	metrics.ObserveRender(r.Format(), start)
	s.log.Debug("document rendered",
		zap.String("report_id", res.ID),
		zap.String("format", r.Format()),
		zap.Int("bytes", len(data)),
	)
	return data, r, nil
}
