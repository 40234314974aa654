package tariffs

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bher20/ecoagua/internal/storage"
)

var (
	ErrTariffNotFound = errors.New("tariff not found")
	ErrInvalidTariff  = errors.New("invalid tariff")
)

// Service manages the tariff catalog on top of a storage backend.
type Service struct {
	store storage.Storage
	log   *zap.Logger
	now   func() time.Time
}

func NewService(st storage.Storage, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: st, log: log, now: time.Now}
}

// Seed upserts each descriptor into the catalog.
func (s *Service) Seed(ctx context.Context, list []Descriptor) error {
	for _, d := range list {
		if _, err := s.Upsert(ctx, d); err != nil {
			return fmt.Errorf("seed tariff %q: %w", d.Key, err)
		}
	}
	s.log.Info("tariff catalog seeded", zap.Int("count", len(list)))
	return nil
}

func (s *Service) List(ctx context.Context) ([]storage.Tariff, error) {
	return s.store.ListTariffs(ctx)
}

func (s *Service) Get(ctx context.Context, key string) (*storage.Tariff, error) {
	t, err := s.store.GetTariff(ctx, normalizeKey(key))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrTariffNotFound, key)
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Upsert validates d and stores it, returning the stored tariff.
func (s *Service) Upsert(ctx context.Context, d Descriptor) (*storage.Tariff, error) {
	key := normalizeKey(d.Key)
	if key == "" {
		return nil, fmt.Errorf("%w: key is required", ErrInvalidTariff)
	}
	if d.PricePerM3 < 0 || math.IsNaN(d.PricePerM3) || math.IsInf(d.PricePerM3, 0) {
		return nil, fmt.Errorf("%w: price_per_m3 must be a non-negative number", ErrInvalidTariff)
	}
	currency := strings.ToUpper(strings.TrimSpace(d.Currency))
	if currency == "" {
		currency = DefaultCurrency
	}
	name := strings.TrimSpace(d.Name)
	if name == "" {
		name = key
	}

	t := storage.Tariff{
		Key:        key,
		Name:       name,
		PricePerM3: d.PricePerM3,
		Currency:   currency,
		Notes:      d.Notes,
		UpdatedAt:  s.now().UTC(),
	}
	if err := s.store.UpsertTariff(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}

// Delete removes the named tariff from the catalog.
func (s *Service) Delete(ctx context.Context, key string) error {
	err := s.store.DeleteTariff(ctx, normalizeKey(key))
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %q", ErrTariffNotFound, key)
	}
	if err != nil {
		return err
	}
	s.log.Info("tariff deleted", zap.String("tariff", normalizeKey(key)))
	return nil
}

// PricePerM3 returns the price of the named tariff.
func (s *Service) PricePerM3(ctx context.Context, key string) (float64, error) {
	t, err := s.Get(ctx, key)
	if err != nil {
		return 0, err
	}
	return t.PricePerM3, nil
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}
