package chronos

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/chronos/internal/adapters/config"
	"go.trai.ch/chronos/internal/adapters/logger"
	"go.trai.ch/chronos/internal/core/domain"
	"go.trai.ch/chronos/internal/core/ports"
)

// NodeID is the unique identifier for the Chronos source Graft node.
const NodeID graft.ID = "adapter.chronos_source"

func init() {
	graft.Register(graft.Node[ports.TimetableSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.TimetableSource, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewClient(cfg.Upstream, log), nil
		},
	})
}
