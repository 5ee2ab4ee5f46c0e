package cache

import (
	"context"
	"time"

	"go.trai.ch/chronos/internal/core/domain"
	"go.trai.ch/chronos/internal/core/ports"
)

// NoopStore is a TimetableStore that never holds anything.
type NoopStore struct{}

var _ ports.TimetableStore = NoopStore{}

// Get always misses.
func (NoopStore) Get(context.Context, string) (*domain.CachedTimeTable, error) {
	return nil, nil
}

// Put always fails with domain.ErrStoreUnavailable.
func (NoopStore) Put(context.Context, string, *domain.TimeTable, time.Duration) (*domain.CachedTimeTable, error) {
	return nil, domain.ErrStoreUnavailable
}
