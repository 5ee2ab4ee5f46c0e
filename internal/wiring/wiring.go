// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/chronos/internal/adapters/cache"
	_ "go.trai.ch/chronos/internal/adapters/chronos"
	_ "go.trai.ch/chronos/internal/adapters/config"
	_ "go.trai.ch/chronos/internal/adapters/export"
	_ "go.trai.ch/chronos/internal/adapters/logger"
	// Register app and engine nodes.
	_ "go.trai.ch/chronos/internal/app"
	_ "go.trai.ch/chronos/internal/engine/resolver"
)
