package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/ess/internal/core/ports"
)

const (
	// WalkerNodeID identifies the input discovery walker node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ResolverFactoryNodeID identifies the asset resolver factory node.
	ResolverFactoryNodeID graft.ID = "adapter.fs.resolver_factory"
	// HasherNodeID identifies the fingerprint hasher node.
	HasherNodeID graft.ID = "adapter.fs.hasher"
)

// Factory implements ports.ResolverFactory; a fresh resolver (and memo
// table) is built per pipeline run.
type Factory struct{}

// New builds a resolver over the given primary root and search paths.
func (Factory) New(root string, searchPaths []string) ports.AssetResolver {
	return NewResolver(root, searchPaths)
}

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.ResolverFactory]{
		ID:        ResolverFactoryNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ResolverFactory, error) {
			return Factory{}, nil
		},
	})

	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Hasher, error) {
			return NewHasher(), nil
		},
	})
}
