// Package app implements the application layer for ess.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/ess/internal/adapters/fs"
	"go.trai.ch/ess/internal/core/domain"
	"go.trai.ch/ess/internal/core/ports"
	"go.trai.ch/ess/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic: one Run discovers the inputs,
// builds a pipeline for the loaded settings, and processes every input
// concurrently.
type App struct {
	loader    ports.SettingsLoader
	resolvers ports.ResolverFactory
	compiler  ports.SassCompiler
	pruner    ports.RulePruner
	inliner   ports.ImageInliner
	svg       ports.SvgOptimizer
	store     ports.BuildRecordStore
	tracer    ports.Tracer
	logger    ports.Logger

	walker *fs.Walker
	hasher *fs.Hasher
}

// RunOptions configures one Run invocation.
type RunOptions struct {
	// NoCache bypasses the build record store and reprocesses every input.
	NoCache bool
	// Verbose forces debug logging regardless of the settings file.
	Verbose bool
}

// New creates a new App instance.
func New(
	loader ports.SettingsLoader,
	resolvers ports.ResolverFactory,
	compiler ports.SassCompiler,
	pruner ports.RulePruner,
	inliner ports.ImageInliner,
	svg ports.SvgOptimizer,
	store ports.BuildRecordStore,
	tracer ports.Tracer,
	logger ports.Logger,
	walker *fs.Walker,
	hasher *fs.Hasher,
) *App {
	return &App{
		loader:    loader,
		resolvers: resolvers,
		compiler:  compiler,
		pruner:    pruner,
		inliner:   inliner,
		svg:       svg,
		store:     store,
		tracer:    tracer,
		logger:    logger,
		walker:    walker,
		hasher:    hasher,
	}
}

// Run processes the given input paths, or every discoverable stylesheet
// under the settings root when none are given. A failing input aborts only
// its own pipeline; Run reports the failure count at the end.
func (a *App) Run(ctx context.Context, cwd string, paths []string, opts RunOptions) error {
	settings, err := a.loader.Load(cwd)
	if err != nil {
		return zerr.Wrap(err, "failed to load settings")
	}
	settings.Verbose = settings.Verbose || opts.Verbose
	if v, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		v.SetVerbose(settings.Verbose)
	}

	root := settings.Root
	if !filepath.IsAbs(root) {
		root = filepath.Join(cwd, root)
	}
	if settings.OutputDir != "" && !filepath.IsAbs(settings.OutputDir) {
		settings.OutputDir = filepath.Join(cwd, settings.OutputDir)
	}

	resolver := a.resolvers.New(root, absolutePaths(cwd, settings.SearchPaths))
	pipe := pipeline.New(settings, resolver, a.compiler, a.pruner, a.inliner, a.svg, a.tracer)

	inputs, err := a.inputs(root, paths)
	if err != nil {
		return err
	}

	var mu sync.Mutex
	var failures int

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, rel := range inputs {
		g.Go(func() error {
			if err := a.runOne(gctx, pipe, settings, root, rel, opts); err != nil {
				a.logger.WithAsset(rel).Error(err)
				mu.Lock()
				failures++
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if failures > 0 {
		return zerr.With(domain.ErrPipelineFailed, "failed_inputs", fmt.Sprint(failures))
	}
	return nil
}

// runOne applies the pipeline to a single input and persists its outputs
// and build record.
func (a *App) runOne(ctx context.Context, pipe *pipeline.Pipeline, settings domain.Settings, root, rel string, opts RunOptions) error {
	key := domain.NewAssetKey(fs.DefaultPackage, rel)
	content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel))) //nolint:gosec // paths come from discovery under root
	if err != nil {
		return zerr.Wrap(err, "failed to read input")
	}
	primary := domain.NewAsset(key, content)

	if !opts.NoCache {
		cached, err := a.cached(primary, settings)
		if err != nil {
			return err
		}
		if cached {
			a.logger.WithAsset(key.String()).Info("cached")
			return nil
		}
	}

	dctx := newDiskContext(primary, root, settings.OutputDir, a.logger)
	pipe.Declare(dctx)
	if err := pipe.Apply(ctx, dctx); err != nil {
		return err
	}
	if err := dctx.Flush(); err != nil {
		return err
	}

	fingerprint, err := a.hasher.Fingerprint(content, settings, dctx.Dependencies())
	if err != nil {
		return err
	}
	return a.store.Put(domain.BuildRecord{
		Key:         key.String(),
		Fingerprint: fingerprint,
		Outputs:     dctx.OutputKeys(),
		Deps:        dctx.Dependencies(),
		BuiltAt:     time.Now().UTC(),
	})
}

// cached reports whether the stored record still matches the input, its
// settings, and the dependency files recorded last run.
func (a *App) cached(primary domain.Asset, settings domain.Settings) (bool, error) {
	record, err := a.store.Get(primary.Key.String())
	if err != nil {
		return false, err
	}
	if record == nil {
		return false, nil
	}
	fingerprint, err := a.hasher.Fingerprint(primary.Content, settings, record.Deps)
	if err != nil {
		return false, nil
	}
	return fingerprint == record.Fingerprint, nil
}

// Plan returns the declared output keys per input without applying any
// stage.
func (a *App) Plan(cwd string, paths []string) (map[string][]string, error) {
	settings, err := a.loader.Load(cwd)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load settings")
	}
	root := settings.Root
	if !filepath.IsAbs(root) {
		root = filepath.Join(cwd, root)
	}

	inputs, err := a.inputs(root, paths)
	if err != nil {
		return nil, err
	}

	plan := make(map[string][]string, len(inputs))
	for _, rel := range inputs {
		key := domain.NewAssetKey(fs.DefaultPackage, rel)
		var outputs []string
		for _, out := range pipeline.Outputs(key, settings) {
			outputs = append(outputs, out.String())
		}
		plan[key.String()] = outputs
	}
	return plan, nil
}

// inputs returns the slash-separated relative paths to process.
func (a *App) inputs(root string, paths []string) ([]string, error) {
	if len(paths) > 0 {
		rels := make([]string, 0, len(paths))
		for _, p := range paths {
			rel := filepath.ToSlash(p)
			if filepath.IsAbs(p) {
				r, err := filepath.Rel(root, p)
				if err != nil {
					return nil, zerr.Wrap(err, "input path outside root")
				}
				rel = filepath.ToSlash(r)
			}
			rels = append(rels, rel)
		}
		return rels, nil
	}

	var rels []string
	for rel := range a.walker.Stylesheets(root) {
		rels = append(rels, rel)
	}
	return rels, nil
}

func absolutePaths(cwd string, paths []string) []string {
	abs := make([]string, 0, len(paths))
	for _, p := range paths {
		if !filepath.IsAbs(p) {
			p = filepath.Join(cwd, p)
		}
		abs = append(abs, p)
	}
	return abs
}
