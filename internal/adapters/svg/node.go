package svg

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ess/internal/core/ports"
)

// NodeID is the unique identifier for the SVG optimizer Graft node.
const NodeID graft.ID = "adapter.svg"

func init() {
	graft.Register(graft.Node[ports.SvgOptimizer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.SvgOptimizer, error) {
			return NewOptimizer(), nil
		},
	})
}
