// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cdbgen/internal/adapters/compdb"
	_ "go.trai.ch/cdbgen/internal/adapters/config"
	_ "go.trai.ch/cdbgen/internal/adapters/detector"
	_ "go.trai.ch/cdbgen/internal/adapters/logger"
	_ "go.trai.ch/cdbgen/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/cdbgen/internal/app"
)
