package storage

import (
	"context"
	"sort"
	"sync"
)

// MemoryStorage is an in-memory Storage implementation, useful for tests and
// simple single-process deployments.
type MemoryStorage struct {
	mu      sync.RWMutex
	tariffs map[string]Tariff
}

// NewMemory returns an empty MemoryStorage.
func NewMemory() *MemoryStorage {
	return &MemoryStorage{tariffs: make(map[string]Tariff)}
}

func (m *MemoryStorage) Close() error { return nil }

func (m *MemoryStorage) Ping(ctx context.Context) error { return nil }

// ListTariffs returns every tariff sorted by key.
func (m *MemoryStorage) ListTariffs(ctx context.Context) ([]Tariff, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Tariff, 0, len(m.tariffs))
	for _, t := range m.tariffs {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

func (m *MemoryStorage) GetTariff(ctx context.Context, key string) (*Tariff, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	t, ok := m.tariffs[key]
	if !ok {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (m *MemoryStorage) UpsertTariff(ctx context.Context, t Tariff) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tariffs[t.Key] = t
	return nil
}

func (m *MemoryStorage) DeleteTariff(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tariffs[key]; !ok {
		return ErrNotFound
	}
	delete(m.tariffs, key)
	return nil
}
