package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ess/internal/core/ports"
)

const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SettingsLoader, error) {
			return &FileSettingsLoader{Filename: DefaultFilename}, nil
		},
	})
}
