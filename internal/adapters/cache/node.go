package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/chronos/internal/adapters/config"
	"go.trai.ch/chronos/internal/adapters/logger"
	"go.trai.ch/chronos/internal/core/domain"
	"go.trai.ch/chronos/internal/core/ports"
)

// NodeID is the unique identifier for the timetable store Graft node.
const NodeID graft.ID = "adapter.cache_store"

func init() {
	graft.Register(graft.Node[ports.TimetableStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.TimetableStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(cfg.Cache, clockwork.NewRealClock(), log), nil
		},
	})
}

// New selects the store for cfg. Caching disabled, no endpoint, or an
// unusable endpoint all yield a NoopStore.
func New(cfg domain.CacheConfig, clock clockwork.Clock, log ports.Logger) ports.TimetableStore {
	if cfg.Disabled {
		return NoopStore{}
	}
	if cfg.URI == "" {
		log.Warn("no cache endpoint configured, timetables will not be cached")
		return NoopStore{}
	}

	store, err := NewRedisStore(cfg, clock)
	if err != nil {
		log.Error(err)
		return NoopStore{}
	}
	return store
}
