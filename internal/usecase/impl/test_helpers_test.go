package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"shopradar/config"
	"shopradar/internal/domain/repository"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Location: &config.LocationConfig{
			Samples:        3,
			RequestTimeout: time.Second,
			CacheMaxAge:    5 * time.Minute,
		},
		Proximity: &config.ProximityConfig{
			RadiusMeters: 30,
			// Long enough that advancing the mock clock in a test never fires the loop.
			Interval: 1000 * time.Hour,
			Cooldown: 5 * time.Minute,
		},
		Reminder: &config.ReminderConfig{
			RadiusMeters:    5000,
			Interval:        1000 * time.Hour,
			RefreshInterval: 2000 * time.Hour,
			Cooldown:        24 * time.Hour,
			NotificationTTL: 10 * time.Second,
		},
		Search: &config.SearchConfig{
			HistorySize:        5,
			RecentlyViewedSize: 10,
		},
	}
}

// memoryLocalStore is an in-memory device storage for tests.
type memoryLocalStore struct {
	mu     sync.Mutex
	values map[string][]byte
}

func newMemoryLocalStore() *memoryLocalStore {
	return &memoryLocalStore{values: make(map[string][]byte)}
}

func (s *memoryLocalStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.values[key]
	if !ok {
		return nil, repository.ErrLocalKeyNotFound
	}

	return append([]byte{}, v...), nil
}

func (s *memoryLocalStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = append([]byte{}, value...)

	return nil
}

func (s *memoryLocalStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)

	return nil
}

func (s *memoryLocalStore) has(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.values[key]

	return ok
}

func ptr[T any](v T) *T {
	return &v
}
