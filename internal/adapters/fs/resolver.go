// Package fs provides file system adapters for asset resolution, input
// discovery and content fingerprinting.
package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/ess/internal/core/domain"
	"go.trai.ch/ess/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// DefaultPackage is the namespace assigned to assets resolved from disk.
const DefaultPackage = "ess"

var _ ports.AssetResolver = (*Resolver)(nil)

type resolution struct {
	asset domain.Asset
	err   error
}

// Resolver implements ports.AssetResolver over the local file system.
//
// A reference is normalized to an AssetKey relative to the originating
// asset, then fetched at most once: concurrent requests for the same key
// join one in-flight probe sequence via singleflight, and completed
// resolutions (including misses) are cached for the resolver's lifetime.
type Resolver struct {
	pkg         string
	root        string
	searchPaths []string

	group singleflight.Group
	mu    sync.RWMutex
	memo  map[domain.AssetKey]resolution

	// read is swapped out in tests to count probes.
	read func(string) ([]byte, error)
}

// NewResolver creates a Resolver over the primary root and the auxiliary
// search paths, consulted in order.
func NewResolver(root string, searchPaths []string) *Resolver {
	return &Resolver{
		pkg:         DefaultPackage,
		root:        root,
		searchPaths: searchPaths,
		memo:        make(map[domain.AssetKey]resolution),
		read:        os.ReadFile,
	}
}

// Resolve returns the content of the asset referenced by ref.
func (r *Resolver) Resolve(ctx context.Context, ref string, from domain.AssetKey) (domain.Asset, error) {
	if err := ctx.Err(); err != nil {
		return domain.Asset{}, err
	}

	key := r.normalize(ref, from)

	r.mu.RLock()
	res, ok := r.memo[key]
	r.mu.RUnlock()
	if ok {
		return res.asset, res.err
	}

	v, _, _ := r.group.Do(key.String(), func() (any, error) {
		r.mu.RLock()
		res, ok := r.memo[key]
		r.mu.RUnlock()
		if !ok {
			res = r.fetch(ref, key, from)
			r.mu.Lock()
			r.memo[key] = res
			r.mu.Unlock()
		}
		return res, nil
	})

	res = v.(resolution)
	return res.asset, res.err
}

// normalize derives the logical key a raw reference resolves to. Relative
// references are joined onto the directory of the originating asset, so two
// spellings of the same target share one memo entry.
func (r *Resolver) normalize(ref string, from domain.AssetKey) domain.AssetKey {
	p := filepath.ToSlash(ref)
	if !path.IsAbs(p) && from.Path != "" {
		p = path.Join(path.Dir(from.Path), p)
	}
	pkg := from.Package
	if pkg == "" {
		pkg = r.pkg
	}
	return domain.NewAssetKey(pkg, p)
}

// fetch probes the candidate locations in order and returns the first hit.
func (r *Resolver) fetch(ref string, key domain.AssetKey, from domain.AssetKey) resolution {
	candidates := make([]string, 0, len(r.searchPaths)+1)
	candidates = append(candidates, filepath.Join(r.root, filepath.FromSlash(key.Path)))
	for _, sp := range r.searchPaths {
		candidates = append(candidates, filepath.Join(sp, filepath.FromSlash(ref)))
	}

	for _, candidate := range candidates {
		data, err := r.read(candidate)
		if err != nil {
			if errors.Is(err, iofs.ErrNotExist) {
				continue
			}
			return resolution{err: zerr.With(zerr.Wrap(err, "failed to read asset"), "path", candidate)}
		}
		return resolution{asset: domain.NewAsset(key, data)}
	}

	return resolution{err: zerr.With(zerr.With(domain.ErrAssetNotFound, "ref", ref), "from", from.String())}
}

// KeyFor maps an on-disk path under the primary root to its AssetKey.
func (r *Resolver) KeyFor(p string) (domain.AssetKey, bool) {
	rel, err := filepath.Rel(r.root, p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return domain.AssetKey{}, false
	}
	return domain.NewAssetKey(r.pkg, filepath.ToSlash(rel)), true
}
