// Package app implements the application layer for chronos.
package app

import (
	"context"

	"go.trai.ch/chronos/internal/core/domain"
	"go.trai.ch/chronos/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Resolver resolves the timetable of one group.
type Resolver interface {
	Resolve(ctx context.Context, groupID string) domain.Resolution
}

// App represents the main application logic.
type App struct {
	resolver    Resolver
	source      ports.TimetableSource
	concurrency int
}

// New creates a new App instance. concurrency bounds ResolveAll.
func New(resolver Resolver, source ports.TimetableSource, concurrency int) *App {
	if concurrency < 1 {
		concurrency = domain.DefaultConcurrency
	}
	return &App{
		resolver:    resolver,
		source:      source,
		concurrency: concurrency,
	}
}

// Resolve returns the timetable resolution of groupID.
func (a *App) Resolve(ctx context.Context, groupID string) domain.Resolution {
	return a.resolver.Resolve(ctx, groupID)
}

// ResolveAll resolves every group independently and in parallel.
// Results are returned in the order of groupIDs.
func (a *App) ResolveAll(ctx context.Context, groupIDs []string) []domain.Resolution {
	results := make([]domain.Resolution, len(groupIDs))

	var g errgroup.Group
	g.SetLimit(a.concurrency)
	for i, id := range groupIDs {
		g.Go(func() error {
			results[i] = a.resolver.Resolve(ctx, id)
			return nil
		})
	}
	// Resolve reports failures through the resolution status only.
	_ = g.Wait()

	return results
}

// ListGroups returns the groups listed upstream.
func (a *App) ListGroups(ctx context.Context) ([]domain.Group, error) {
	return a.source.FetchGroups(ctx)
}
