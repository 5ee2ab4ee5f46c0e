package export

import (
	"context"
	"time"

	"github.com/grindlemire/graft"
	"go.trai.ch/chronos/internal/adapters/config"
	"go.trai.ch/chronos/internal/core/domain"
	"go.trai.ch/chronos/internal/core/ports"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the export parser Graft node.
const NodeID graft.ID = "adapter.export_parser"

func init() {
	graft.Register(graft.Node[ports.TimetableParser]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.TimetableParser, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			loc, err := time.LoadLocation(cfg.Timezone)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigInvalid.Error()), "timezone", cfg.Timezone)
			}
			return NewParser(loc), nil
		},
	})
}
