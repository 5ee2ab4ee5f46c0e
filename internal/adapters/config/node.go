package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/chronos/internal/core/domain"
	"go.trai.ch/chronos/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the config loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// ConfigNodeID is the unique identifier for the loaded configuration Graft node.
	ConfigNodeID graft.ID = "adapter.config"
)

// EnvConfigPath names the config file when no path is set on the context.
const EnvConfigPath = "CHRONOS_CONFIG"

// Overrides carries command-line settings into the configuration node.
type Overrides struct {
	Path    string
	LogJSON bool
}

type overridesKey struct{}

// WithOverrides returns a context carrying o for the configuration node.
func WithOverrides(ctx context.Context, o Overrides) context.Context {
	return context.WithValue(ctx, overridesKey{}, o)
}

// OverridesFrom returns the overrides stored on ctx, resolving an empty path
// from CHRONOS_CONFIG and then the default file name.
func OverridesFrom(ctx context.Context) Overrides {
	o, _ := ctx.Value(overridesKey{}).(Overrides)
	if o.Path == "" {
		o.Path = os.Getenv(EnvConfigPath)
	}
	if o.Path == "" {
		o.Path = domain.ConfigFileName
	}
	return o
}

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[*domain.Config]{
		ID:        ConfigNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID},
		Run: func(ctx context.Context) (*domain.Config, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			o := OverridesFrom(ctx)
			cfg, err := loader.Load(o.Path)
			if err != nil {
				return nil, err
			}
			if o.LogJSON {
				cfg.Log.JSON = true
			}
			return cfg, nil
		},
	})
}
