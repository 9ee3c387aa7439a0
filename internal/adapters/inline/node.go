package inline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ess/internal/core/ports"
)

// NodeID is the unique identifier for the image inliner Graft node.
const NodeID graft.ID = "adapter.inline"

func init() {
	graft.Register(graft.Node[ports.ImageInliner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ImageInliner, error) {
			return NewRewriter(), nil
		},
	})
}
