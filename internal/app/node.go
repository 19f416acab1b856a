package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cdbgen/internal/adapters/compdb"   //nolint:depguard // Wired in app layer
	"go.trai.ch/cdbgen/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/cdbgen/internal/adapters/detector" //nolint:depguard // Wired in app layer
	"go.trai.ch/cdbgen/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/cdbgen/internal/adapters/shell"    //nolint:depguard // Wired in app layer
	"go.trai.ch/cdbgen/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			compdb.NodeID,
			shell.ResolverNodeID,
			detector.NodeID,
			shell.LauncherNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*config.Config](ctx)
	if err != nil {
		return nil, err
	}

	db, err := graft.Dep[ports.CompilationDatabase](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.CompilerResolver](ctx)
	if err != nil {
		return nil, err
	}

	sources, err := graft.Dep[ports.SourceDetector](ctx)
	if err != nil {
		return nil, err
	}

	launcher, err := graft.Dep[ports.Launcher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, db, resolver, sources, launcher, log), nil
}
