package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a tariff key does not exist.
var ErrNotFound = errors.New("storage: not found")

// Storage abstracts persistence for the tariff catalog.
type Storage interface {
	ListTariffs(ctx context.Context) ([]Tariff, error)
	GetTariff(ctx context.Context, key string) (*Tariff, error)
	UpsertTariff(ctx context.Context, t Tariff) error
	DeleteTariff(ctx context.Context, key string) error

	// Ping checks that the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases any resources (no-op for in-memory).
	Close() error
}
