package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cdbgen/internal/adapters/config"
	"go.trai.ch/cdbgen/internal/adapters/logger"
	"go.trai.ch/cdbgen/internal/core/ports"
)

const (
	// ResolverNodeID is the Graft node of the compiler resolver.
	ResolverNodeID graft.ID = "adapter.compiler_resolver"
	// LauncherNodeID is the Graft node of the compiler launcher.
	LauncherNodeID graft.ID = "adapter.launcher"
)

func init() {
	graft.Register(graft.Node[ports.CompilerResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.CompilerResolver, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(cfg.Prefix), nil
		},
	})

	graft.Register(graft.Node[ports.Launcher]{
		ID:        LauncherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Launcher, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLauncher(log), nil
		},
	})
}
