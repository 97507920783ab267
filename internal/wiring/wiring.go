// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/attest/internal/adapters/cas"
	_ "go.trai.ch/attest/internal/adapters/config"
	_ "go.trai.ch/attest/internal/adapters/fs"
	_ "go.trai.ch/attest/internal/adapters/logger"
	_ "go.trai.ch/attest/internal/adapters/mvnlist"
	_ "go.trai.ch/attest/internal/adapters/pom"
	_ "go.trai.ch/attest/internal/adapters/render"
	_ "go.trai.ch/attest/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/attest/internal/app"
	_ "go.trai.ch/attest/internal/engine/collector"
)
