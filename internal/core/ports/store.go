package ports

import (
	"context"
	"time"

	"go.trai.ch/chronos/internal/core/domain"
)

// TimetableStore caches timetables per group.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type TimetableStore interface {
	// Get retrieves the cached timetable of a group.
	// Returns nil, nil if not found or expired.
	Get(ctx context.Context, groupID string) (*domain.CachedTimeTable, error)

	// Put stores the timetable of a group for ttl and returns the stored record.
	Put(ctx context.Context, groupID string, timetable *domain.TimeTable, ttl time.Duration) (*domain.CachedTimeTable, error)
}
