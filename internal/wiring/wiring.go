// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/ess/internal/adapters/config"
	_ "go.trai.ch/ess/internal/adapters/fs"
	_ "go.trai.ch/ess/internal/adapters/inline"
	_ "go.trai.ch/ess/internal/adapters/logger"
	_ "go.trai.ch/ess/internal/adapters/prune"
	_ "go.trai.ch/ess/internal/adapters/sass"
	_ "go.trai.ch/ess/internal/adapters/state"
	_ "go.trai.ch/ess/internal/adapters/svg"
	_ "go.trai.ch/ess/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/ess/internal/app"
)
