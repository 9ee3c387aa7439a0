package app

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/ess/internal/core/domain"
	"go.trai.ch/ess/internal/core/ports"
	"go.trai.ch/zerr"
)

// diskContext is the disk-backed ports.BuildContext for the standalone
// runner. Outputs are collected during Apply and written out in one Flush,
// so a failed pipeline leaves no partial files behind.
type diskContext struct {
	primary domain.Asset
	root    string
	outDir  string
	logger  ports.Logger

	declared []domain.AssetKey
	outputs  []domain.Asset
	deps     []string
	consumed bool
}

var _ ports.BuildContext = (*diskContext)(nil)

func newDiskContext(primary domain.Asset, root, outDir string, logger ports.Logger) *diskContext {
	return &diskContext{
		primary: primary,
		root:    root,
		outDir:  outDir,
		logger:  logger,
	}
}

// Primary returns the asset this invocation was triggered for.
func (c *diskContext) Primary() domain.Asset {
	return c.primary
}

// Consume marks the input as handled.
func (c *diskContext) Consume(id domain.AssetKey) {
	if id == c.primary.Key {
		c.consumed = true
	}
}

// DeclareOutput records a planned output key.
func (c *diskContext) DeclareOutput(id domain.AssetKey) {
	c.declared = append(c.declared, id)
}

// AddOutput collects an emitted asset for the next Flush.
func (c *diskContext) AddOutput(asset domain.Asset) {
	c.outputs = append(c.outputs, asset)
}

// DeclareDependency records a file the input transitively depends on.
func (c *diskContext) DeclareDependency(path string) {
	c.deps = append(c.deps, path)
}

// Logger returns the structured logger for this invocation.
func (c *diskContext) Logger() ports.Logger {
	return c.logger
}

// Dependencies returns the declared dependency paths, deduplicated and
// sorted.
func (c *diskContext) Dependencies() []string {
	deps := slices.Clone(c.deps)
	slices.Sort(deps)
	return slices.Compact(deps)
}

// OutputKeys returns the key strings of the emitted assets.
func (c *diskContext) OutputKeys() []string {
	keys := make([]string, 0, len(c.outputs))
	for _, out := range c.outputs {
		keys = append(keys, out.Key.String())
	}
	return keys
}

// Flush writes the collected outputs to disk.
func (c *diskContext) Flush() error {
	log := c.logger.WithAsset(c.primary.Key.String())
	for _, out := range c.outputs {
		target := c.outputPath(out.Key)
		if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
			return zerr.Wrap(domain.ErrOutputWriteFailed, err.Error())
		}
		if err := os.WriteFile(target, out.Content, 0o644); err != nil { //nolint:gosec // outputs are world-readable build artifacts
			return zerr.Wrap(domain.ErrOutputWriteFailed, err.Error())
		}
		log.Info(fmt.Sprintf("wrote %s", target))
	}
	return nil
}

// outputPath maps an emitted key to a disk location. With an output
// directory, outputs keep their plain key paths. In-place, SVGs overwrite
// their source and derived css/map files get the generated marker stamped
// into their names so they are never picked up as inputs again.
func (c *diskContext) outputPath(key domain.AssetKey) string {
	if c.outDir != "" {
		return filepath.Join(c.outDir, filepath.FromSlash(key.Path))
	}

	switch domain.KindOf(key.Path) {
	case domain.KindCss, domain.KindMap:
		dir := filepath.Join(c.root, filepath.FromSlash(path.Dir(c.primary.Key.Path)))
		return filepath.Join(dir, c.markerName(key))
	default:
		return filepath.Join(c.root, filepath.FromSlash(key.Path))
	}
}

// markerName derives the stamped in-place name: style.scss becomes
// style.ess.scss.css and style.ess.scss.css.map.
func (c *diskContext) markerName(key domain.AssetKey) string {
	base := path.Base(c.primary.Key.Path)
	ext := strings.TrimPrefix(path.Ext(base), ".")
	stem := strings.TrimSuffix(base, path.Ext(base))

	name := stem + domain.GeneratedMarker + ext + ".css"
	if strings.HasSuffix(key.Path, ".map") {
		name += ".map"
	}
	return name
}
