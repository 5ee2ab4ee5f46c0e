package ports

import "go.trai.ch/chronos/internal/core/domain"

// ConfigLoader defines the interface for loading the application configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at path, applies environment overrides
	// and defaults, and validates the result.
	Load(path string) (*domain.Config, error)
}
