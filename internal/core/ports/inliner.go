package ports

import (
	"context"

	"go.trai.ch/ess/internal/core/domain"
)

// FetchFunc resolves one url(...) reference found during inlining. The
// pipeline supplies it on top of the AssetResolver, so fallback search
// paths and memoization apply to every reference.
type FetchFunc func(ctx context.Context, url string, from domain.AssetKey) (domain.Asset, error)

// InlineResult is the output of one inlining pass.
type InlineResult struct {
	// CSS is the rewritten stylesheet text.
	CSS []byte
	// Messages are per-reference diagnostics (unresolvable images that were
	// left untouched).
	Messages []string
	// OK is false when the rewrite as a whole failed; callers then keep
	// their input untouched.
	OK bool
	// Changed reports whether any reference was rewritten.
	Changed bool
}

// ImageInliner rewrites image references to embedded data URIs. Which
// references are eligible is decided by the mode; how each is fetched is
// decided by the supplied FetchFunc.
//
//go:generate mockgen -source=inliner.go -destination=mocks/mock_inliner.go -package=mocks
type ImageInliner interface {
	Inline(ctx context.Context, css domain.Asset, mode domain.InlineMode, fetch FetchFunc) (InlineResult, error)
}
