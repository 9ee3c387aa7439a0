// Package pipeline orchestrates the stylesheet transformation stages.
package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/ess/internal/core/domain"
	"go.trai.ch/ess/internal/core/ports"
	"go.trai.ch/zerr"
)

// Pipeline applies the configured transformation stages to one primary
// input at a time. It is stateless across invocations; the resolver's memo
// table is the only state shared between concurrent applies.
type Pipeline struct {
	settings domain.Settings
	resolver ports.AssetResolver
	compiler ports.SassCompiler
	pruner   ports.RulePruner
	inliner  ports.ImageInliner
	svg      ports.SvgOptimizer
	tracer   ports.Tracer
}

// New creates a Pipeline for one run's settings.
func New(
	settings domain.Settings,
	resolver ports.AssetResolver,
	compiler ports.SassCompiler,
	pruner ports.RulePruner,
	inliner ports.ImageInliner,
	svg ports.SvgOptimizer,
	tracer ports.Tracer,
) *Pipeline {
	return &Pipeline{
		settings: settings,
		resolver: resolver,
		compiler: compiler,
		pruner:   pruner,
		inliner:  inliner,
		svg:      svg,
		tracer:   tracer,
	}
}

// Apply runs the transformation state machine for the context's primary
// input. A stage failure aborts this input only; sibling inputs are
// unaffected.
func (p *Pipeline) Apply(ctx context.Context, bc ports.BuildContext) error {
	primary := bc.Primary()
	log := bc.Logger().WithAsset(primary.Key.String())

	if domain.ShouldSkip(primary.Key.Path) {
		log.Info("skipped")
		bc.Consume(primary.Key)
		return nil
	}

	switch domain.KindOf(primary.Key.Path) {
	case domain.KindSvg:
		return p.applySvg(ctx, bc, primary, log)

	case domain.KindMap:
		// Maps are derived, never primary inputs to computation.
		bc.Consume(primary.Key)
		return nil

	case domain.KindCss:
		return p.applyCss(ctx, bc, domain.NewCssUnit(primary), log)

	case domain.KindScss, domain.KindSass:
		if !p.settings.CompileSass {
			bc.Consume(primary.Key)
			return nil
		}
		unit, err := p.compile(ctx, bc, primary, log)
		if err != nil {
			return err
		}
		if unit == nil {
			// Compiler failure, diagnostics already surfaced.
			bc.Consume(primary.Key)
			return nil
		}
		return p.applyCss(ctx, bc, *unit, log)

	default:
		log.Debug("ignored: unhandled extension")
		bc.Consume(primary.Key)
		return nil
	}
}

func (p *Pipeline) applySvg(ctx context.Context, bc ports.BuildContext, primary domain.Asset, log ports.Logger) error {
	bc.Consume(primary.Key)

	out := primary
	if p.settings.OptimizeSvg {
		err := runStage(ctx, p.tracer, log, "svg", primary.Key, func(ctx context.Context, span ports.Span) error {
			optimized, err := p.svg.Optimize(primary.Content)
			if err != nil {
				return err
			}
			span.SetAttribute("bytes_saved", len(primary.Content)-len(optimized))
			out = domain.NewAsset(primary.Key, optimized)
			log.Debug(fmt.Sprintf("optimized svg:\n%s", out.Text()))
			return nil
		})
		if err != nil {
			return err
		}
	}

	bc.AddOutput(out)
	return nil
}

// compile runs the Sass stage. A nil unit with a nil error means the
// compiler reported diagnostics and this input produces no outputs.
func (p *Pipeline) compile(ctx context.Context, bc ports.BuildContext, primary domain.Asset, log ports.Logger) (*domain.CssUnit, error) {
	opts := ports.CompileOptions{
		Style:     p.settings.SassStyle,
		Dir:       filepath.Join(p.settings.Root, filepath.FromSlash(path.Dir(primary.Key.Path))),
		LoadPaths: p.settings.SearchPaths,
	}

	// Imports are declared before the compile outcome is known, so a broken
	// partial still re-triggers this input when it is fixed.
	imports, err := p.compiler.ListImports(ctx, primary, opts)
	if err != nil {
		log.Debug(fmt.Sprintf("import walk incomplete: %v", err))
	}
	for _, imported := range imports {
		bc.DeclareDependency(imported)
	}

	var result *ports.CompileResult
	err = runStage(ctx, p.tracer, log, "sass", primary.Key, func(ctx context.Context, span ports.Span) error {
		result, err = p.compiler.Compile(ctx, primary, opts)
		return err
	})
	if errors.Is(err, domain.ErrSassCompileFailed) {
		log.Error(err)
		return nil, nil
	}
	if err != nil {
		return nil, zerr.Wrap(err, "sass stage failed")
	}

	cssKey := primary.Key.ChangeExtension(".css")
	content := domain.NewAsset(cssKey, result.CSS)
	sourceMap := domain.NewAsset(cssKey.MapKey(), result.SourceMap)
	return &domain.CssUnit{Original: &primary, Content: content, SourceMap: &sourceMap}, nil
}

func (p *Pipeline) applyCss(ctx context.Context, bc ports.BuildContext, unit domain.CssUnit, log ports.Logger) error {
	baseline := unit.Content
	var err error

	if p.settings.PruneCss {
		unit, err = p.prune(ctx, unit, log)
		if err != nil {
			return err
		}
	}

	if p.settings.ImageInlining != domain.InlineDisabled {
		unit, err = p.inline(ctx, unit, log)
		if err != nil {
			return err
		}
	}

	bc.Consume(bc.Primary().Key)

	// Nothing changed and no map was ever introduced: avoid a no-op
	// duplicate output.
	if unit.SourceMap == nil && unit.ContentEquals(baseline) {
		log.Info("unchanged")
		return nil
	}

	if unit.Original != nil && unit.SourceMap != nil &&
		!bytes.Equal(unit.Original.Content, unit.Content.Content) &&
		unit.Original.Key != unit.Content.Key &&
		domain.KindOf(unit.Original.Key.Path) == domain.KindCss {
		bc.AddOutput(*unit.Original)
	}
	bc.AddOutput(unit.Content)
	if unit.SourceMap != nil {
		bc.AddOutput(*unit.SourceMap)
	}
	return nil
}

// prune runs the pruning stage. A missing template is not an error; the
// unit passes through untouched.
func (p *Pipeline) prune(ctx context.Context, unit domain.CssUnit, log ports.Logger) (domain.CssUnit, error) {
	template, err := p.resolver.Resolve(ctx, templateRef(unit.Content.Key), unit.Content.Key)
	if errors.Is(err, domain.ErrAssetNotFound) {
		return unit, nil
	}
	if err != nil {
		return unit, err
	}

	var result ports.PruneResult
	err = runStage(ctx, p.tracer, log, "prune", unit.Content.Key, func(ctx context.Context, span ports.Span) error {
		result, err = p.pruner.Prune(unit.Content.Content, template.Content, path.Base(unit.Content.Key.Path))
		if err != nil {
			return err
		}
		span.SetAttribute("dropped", result.Dropped)
		return nil
	})
	if err != nil {
		return unit, err
	}
	if !result.Changed {
		return unit, nil
	}

	log.Debug(fmt.Sprintf("pruned css:\n%s", string(result.CSS)))
	content := domain.NewAsset(unit.Content.Key, result.CSS)
	sourceMap := domain.NewAsset(unit.Content.Key.MapKey(), result.SourceMap)
	return unit.Edited(content, &sourceMap), nil
}

// inline runs the image inlining stage. The incoming source map is kept;
// reference rewrites preserve line structure.
func (p *Pipeline) inline(ctx context.Context, unit domain.CssUnit, log ports.Logger) (domain.CssUnit, error) {
	fetch := func(ctx context.Context, url string, from domain.AssetKey) (domain.Asset, error) {
		return p.resolver.Resolve(ctx, url, from)
	}

	var result ports.InlineResult
	err := runStage(ctx, p.tracer, log, "inline", unit.Content.Key, func(ctx context.Context, span ports.Span) error {
		var err error
		result, err = p.inliner.Inline(ctx, unit.Content, p.settings.ImageInlining, fetch)
		return err
	})
	if err != nil {
		return unit, err
	}
	for _, msg := range result.Messages {
		log.Info(msg)
	}
	if !result.OK || !result.Changed {
		return unit, nil
	}

	content := domain.NewAsset(unit.Content.Key, result.CSS)
	edited := unit.Edited(content, unit.SourceMap)
	return edited, nil
}

// templateRef names the HTML template probed for pruning: the stylesheet's
// base name with the extension swapped for .html.
func templateRef(key domain.AssetKey) string {
	base := path.Base(key.Path)
	return strings.TrimSuffix(base, path.Ext(base)) + ".html"
}
