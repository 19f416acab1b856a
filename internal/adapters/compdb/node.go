package compdb

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cdbgen/internal/adapters/logger"
	"go.trai.ch/cdbgen/internal/core/ports"
)

const NodeID graft.ID = "adapter.compilation_database"

func init() {
	graft.Register(graft.Node[ports.CompilationDatabase]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CompilationDatabase, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewDatabase(log), nil
		},
	})
}
