// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/apkfetch/internal/adapters/config"
	_ "go.trai.ch/apkfetch/internal/adapters/fs"
	_ "go.trai.ch/apkfetch/internal/adapters/logger"
	_ "go.trai.ch/apkfetch/internal/adapters/receipts"
	_ "go.trai.ch/apkfetch/internal/adapters/store"
	_ "go.trai.ch/apkfetch/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/apkfetch/internal/app"
)
