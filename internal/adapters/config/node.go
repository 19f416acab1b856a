package config

import (
	"context"
	"errors"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/cdbgen/internal/core/domain"
)

const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*Config]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Config, error) {
			cwd, err := os.Getwd()
			if err != nil {
				return nil, errors.Join(domain.ErrWorkingDirFailed, err)
			}
			return NewLoader().Load(cwd)
		},
	})
}
