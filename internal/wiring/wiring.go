// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/plugkit/internal/adapters/config"
	_ "go.trai.ch/plugkit/internal/adapters/fs"
	_ "go.trai.ch/plugkit/internal/adapters/logger"
	_ "go.trai.ch/plugkit/internal/adapters/manifest"
	_ "go.trai.ch/plugkit/internal/adapters/platform"
	_ "go.trai.ch/plugkit/internal/adapters/shell"
	_ "go.trai.ch/plugkit/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/plugkit/internal/adapters/watcher"
	// Register app, engine and plugin nodes.
	_ "go.trai.ch/plugkit/internal/app"
	_ "go.trai.ch/plugkit/internal/engine/emitter"
	_ "go.trai.ch/plugkit/internal/engine/locator"
	_ "go.trai.ch/plugkit/internal/engine/planner"
	_ "go.trai.ch/plugkit/internal/plugins"
)
