package logger

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/cdbgen/internal/adapters/config"
	"go.trai.ch/cdbgen/internal/core/ports"
)

const NodeID graft.ID = "adapter.logger"

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.Logger, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := FromConfig(cfg.Log)
			if err != nil {
				return nil, err
			}
			return log, nil
		},
	})
}

// FromConfig creates a Logger for the given settings.
func FromConfig(cfg config.LogConfig) (*Logger, error) {
	l := New()
	l.SetJSON(cfg.Format == config.FormatJSON)
	if err := l.SetLevel(cfg.Level); err != nil {
		return nil, err
	}
	return l, nil
}
