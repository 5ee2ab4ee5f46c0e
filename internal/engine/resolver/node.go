package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/chronos/internal/adapters/cache"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/chronos/internal/adapters/chronos" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/chronos/internal/adapters/config"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/chronos/internal/adapters/export"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/chronos/internal/adapters/logger"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/chronos/internal/core/domain"
	"go.trai.ch/chronos/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			chronos.NodeID,
			export.NodeID,
			logger.NodeID,
			config.ConfigNodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			store, err := graft.Dep[ports.TimetableStore](ctx)
			if err != nil {
				return nil, err
			}

			source, err := graft.Dep[ports.TimetableSource](ctx)
			if err != nil {
				return nil, err
			}

			parser, err := graft.Dep[ports.TimetableParser](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			return New(store, source, parser, log, clockwork.NewRealClock(), cfg.Cache.TTL), nil
		},
	})
}
