// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/thriftpath/internal/adapters/cas"
	_ "go.trai.ch/thriftpath/internal/adapters/config"
	_ "go.trai.ch/thriftpath/internal/adapters/fs"
	_ "go.trai.ch/thriftpath/internal/adapters/jar"
	_ "go.trai.ch/thriftpath/internal/adapters/logger"
	_ "go.trai.ch/thriftpath/internal/adapters/staging"
	_ "go.trai.ch/thriftpath/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/thriftpath/internal/app"
	_ "go.trai.ch/thriftpath/internal/engine/extractor"
)
