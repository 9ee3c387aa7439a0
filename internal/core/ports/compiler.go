package ports

import (
	"context"

	"go.trai.ch/ess/internal/core/domain"
)

// CompileOptions configures one Sass compiler invocation.
type CompileOptions struct {
	// Style is the requested output style ("expanded" or "compressed").
	Style string
	// Dir is the on-disk directory of the source, used to resolve relative
	// imports.
	Dir string
	// LoadPaths are additional import roots, in order.
	LoadPaths []string
}

// CompileResult is the output of a successful Sass compilation.
type CompileResult struct {
	CSS       []byte
	SourceMap []byte
}

// SassCompiler is the command-execution port around the external Sass
// compiler, injected so tests can substitute a fake without spawning a
// process.
//
//go:generate mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type SassCompiler interface {
	// Compile compiles the source to CSS plus a source map. A compiler
	// diagnostic failure is reported as domain.ErrSassCompileFailed with the
	// diagnostics attached as metadata.
	Compile(ctx context.Context, src domain.Asset, opts CompileOptions) (*CompileResult, error)

	// ListImports walks the source's import graph and returns the on-disk
	// paths of every transitively imported file.
	ListImports(ctx context.Context, src domain.Asset, opts CompileOptions) ([]string, error)
}
