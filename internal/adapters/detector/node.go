package detector

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cdbgen/internal/adapters/config"
	"go.trai.ch/cdbgen/internal/core/ports"
)

const NodeID graft.ID = "adapter.source_detector"

func init() {
	graft.Register(graft.Node[ports.SourceDetector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.SourceDetector, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.Extensions), nil
		},
	})
}
