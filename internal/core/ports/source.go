// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/chronos/internal/core/domain"
)

// TimetableSource fetches raw documents from the upstream timetable site.
//
//go:generate mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type TimetableSource interface {
	// FetchTimetable returns the export document of the given group.
	//
	// Any failure is returned as a *domain.FetchError; a 404 from upstream
	// carries domain.KindNotFound.
	FetchTimetable(ctx context.Context, groupID string) (string, error)

	// FetchGroups returns every group listed by the upstream site, in page order.
	// It never returns a partial list together with an error.
	FetchGroups(ctx context.Context) ([]domain.Group, error)
}
