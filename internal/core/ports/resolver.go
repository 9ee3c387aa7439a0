package ports

import (
	"context"

	"go.trai.ch/ess/internal/core/domain"
)

// AssetResolver locates a referenced asset, trying the primary location
// first and then each auxiliary search root in order.
//
// Resolution is memoized by the resolved key: two raw references that
// normalize to the same key share one underlying fetch, and a concurrent
// second request joins the in-flight first instead of probing again.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type AssetResolver interface {
	// Resolve returns the content of the asset referenced by ref, normalized
	// relative to the from key. It fails with domain.ErrAssetNotFound when no
	// candidate location exists.
	Resolve(ctx context.Context, ref string, from domain.AssetKey) (domain.Asset, error)
}

// ResolverFactory builds an AssetResolver for one pipeline run. The memo
// table is scoped to the returned resolver and discarded with it.
type ResolverFactory interface {
	New(root string, searchPaths []string) AssetResolver
}
