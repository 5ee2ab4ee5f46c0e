// Package cache implements the TimetableStore port.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"go.trai.ch/chronos/internal/core/domain"
	"go.trai.ch/chronos/internal/core/ports"
	"go.trai.ch/zerr"
)

// RedisStore implements ports.TimetableStore on a redis server.
// Every operation is preceded by a PING and bounded by the configured timeout.
type RedisStore struct {
	client  *redis.Client
	clock   clockwork.Clock
	timeout time.Duration
}

var _ ports.TimetableStore = (*RedisStore)(nil)

// NewRedisStore connects lazily to the redis server at cfg.URI.
func NewRedisStore(cfg domain.CacheConfig, clock clockwork.Clock) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnavailable.Error()), "uri", cfg.URI)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = domain.DefaultCacheTimeout
	}
	opts.DialTimeout = timeout
	opts.ReadTimeout = timeout
	opts.WriteTimeout = timeout
	opts.MaxRetries = -1

	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	return &RedisStore{
		client:  redis.NewClient(opts),
		clock:   clock,
		timeout: timeout,
	}, nil
}

// Get returns the cached timetable of groupID, or nil, nil if absent or expired.
func (s *RedisStore) Get(ctx context.Context, groupID string) (*domain.CachedTimeTable, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.probe(ctx); err != nil {
		return nil, err
	}

	key := domain.CacheKey(groupID)
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOperationFailed.Error()), "key", key)
	}

	var record domain.CachedTimeTable
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "key", key)
	}

	return &record, nil
}

// Put stores timetable under groupID for ttl, stamped with the current time.
// The entry of a previous Put is replaced.
func (s *RedisStore) Put(
	ctx context.Context,
	groupID string,
	timetable *domain.TimeTable,
	ttl time.Duration,
) (*domain.CachedTimeTable, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.probe(ctx); err != nil {
		return nil, err
	}

	record := &domain.CachedTimeTable{
		CacheDate: s.clock.Now().Round(0),
		TimeTable: *timetable,
	}

	key := domain.CacheKey(groupID)
	data, err := json.Marshal(record)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error()), "key", key)
	}

	if err := s.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreOperationFailed.Error()), "key", key)
	}

	return record, nil
}

// Close releases the connection pool.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) probe(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return zerr.Wrap(err, domain.ErrStoreUnavailable.Error())
	}
	return nil
}
