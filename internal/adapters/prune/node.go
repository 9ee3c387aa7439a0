package prune

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ess/internal/core/ports"
)

// NodeID is the unique identifier for the rule pruner Graft node.
const NodeID graft.ID = "adapter.prune"

func init() {
	graft.Register(graft.Node[ports.RulePruner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.RulePruner, error) {
			return NewPruner(), nil
		},
	})
}
