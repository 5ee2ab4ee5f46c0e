// Package resolver implements the cache-aside resolution of group timetables.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/chronos/internal/core/domain"
	"go.trai.ch/chronos/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver resolves a group's timetable from the store, falling back to the
// upstream source. It holds no per-call state and is safe for concurrent use.
type Resolver struct {
	store  ports.TimetableStore
	source ports.TimetableSource
	parser ports.TimetableParser
	logger ports.Logger
	clock  clockwork.Clock
	ttl    time.Duration
}

// New creates a Resolver caching parsed timetables for ttl.
func New(
	store ports.TimetableStore,
	source ports.TimetableSource,
	parser ports.TimetableParser,
	logger ports.Logger,
	clock clockwork.Clock,
	ttl time.Duration,
) *Resolver {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if ttl <= 0 {
		ttl = domain.DefaultCacheTTL
	}
	return &Resolver{
		store:  store,
		source: source,
		parser: parser,
		logger: logger,
		clock:  clock,
		ttl:    ttl,
	}
}

// Resolve returns exactly one terminal resolution for groupID.
// The store is always consulted before the upstream source, and store
// failures never turn into StatusError.
func (r *Resolver) Resolve(ctx context.Context, groupID string) domain.Resolution {
	cached, err := r.store.Get(ctx, groupID)
	if err != nil {
		r.logger.Warn(fmt.Sprintf("cache read for group %s failed, treating as miss: %v", groupID, err))
	}
	if err == nil && cached != nil {
		return domain.Hit(groupID, cached)
	}

	doc, err := r.source.FetchTimetable(ctx, groupID)
	if err != nil {
		if domain.FetchStatusOf(err) == domain.FetchNotFound {
			return domain.NotFound(groupID)
		}
		r.logger.Error(operationError(err, "fetch", groupID))
		return domain.Failed(groupID)
	}

	if strings.TrimSpace(doc) == "" {
		r.logger.Error(operationError(domain.ErrEmptyDocument, "fetch", groupID))
		return domain.Failed(groupID)
	}

	timetable, err := r.parser.Parse(doc)
	if err != nil {
		r.logger.Error(operationError(err, "parse", groupID))
		return domain.Failed(groupID)
	}

	stored, err := r.store.Put(ctx, groupID, timetable, r.ttl)
	if err == nil && stored != nil {
		return domain.Miss(groupID, stored)
	}

	if err == nil {
		err = errors.New("store returned no record")
	}
	r.logger.Warn(fmt.Sprintf("caching timetable of group %s failed: %v", groupID, err))

	return domain.Miss(groupID, &domain.CachedTimeTable{
		CacheDate: r.clock.Now(),
		TimeTable: *timetable,
	})
}

func operationError(err error, operation, groupID string) error {
	err = zerr.With(zerr.Wrap(err, "failed to resolve timetable"), "group_id", groupID)
	return zerr.With(err, "operation", operation)
}
