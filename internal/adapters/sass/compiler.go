// Package sass invokes the external dart-sass compiler as a subprocess.
package sass

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/ess/internal/core/domain"
	"go.trai.ch/ess/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SassCompiler = (*Compiler)(nil)

// Compiler implements ports.SassCompiler using the `sass` executable.
type Compiler struct {
	logger ports.Logger
	bin    string
}

// NewCompiler creates a Compiler shelling out to the `sass` executable.
// The SASS_BINARY environment variable overrides the executable name.
func NewCompiler(logger ports.Logger) *Compiler {
	bin := os.Getenv("SASS_BINARY")
	if bin == "" {
		bin = "sass"
	}
	return &Compiler{logger: logger, bin: bin}
}

// Compile runs the compiler over a temp copy of the source and returns the
// produced CSS and source map. Compiler diagnostics surface as
// domain.ErrSassCompileFailed with the stderr text attached.
func (c *Compiler) Compile(ctx context.Context, src domain.Asset, opts ports.CompileOptions) (*ports.CompileResult, error) {
	bin, err := exec.LookPath(c.bin)
	if err != nil {
		return nil, zerr.With(domain.ErrSassCompilerMissing, "binary", c.bin)
	}

	dir, err := os.MkdirTemp("", "ess-sass-")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create compiler scratch directory")
	}
	defer func() { _ = os.RemoveAll(dir) }()

	base := path.Base(src.Key.Path)
	in := filepath.Join(dir, base)
	if err := os.WriteFile(in, src.Content, 0o600); err != nil {
		return nil, zerr.Wrap(err, "failed to stage compiler input")
	}
	out := filepath.Join(dir, strings.TrimSuffix(base, path.Ext(base))+".css")

	style := opts.Style
	if style == "" {
		style = "expanded"
	}

	args := []string{"--style", style, "--source-map"}
	if opts.Dir != "" {
		args = append(args, "--load-path", opts.Dir)
	}
	for _, lp := range opts.LoadPaths {
		args = append(args, "--load-path", lp)
	}
	args = append(args, in, out)

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...) //nolint:gosec // Arguments are built above
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		diag := strings.TrimSpace(stderr.String())
		c.logger.WithAsset(src.Key.String()).Debug("sass compiler diagnostics:\n" + diag)
		failure := zerr.With(domain.ErrSassCompileFailed, "diagnostics", diag)
		return nil, zerr.With(failure, "asset", src.Key.String())
	}

	css, err := os.ReadFile(out) //nolint:gosec // Path is built above
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read compiled css")
	}
	srcMap, err := os.ReadFile(out + ".map") //nolint:gosec // Path is built above
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read compiler source map")
	}

	return &ports.CompileResult{CSS: css, SourceMap: rebaseSources(srcMap, base)}, nil
}

// rebaseSources strips the scratch directory from the map's source URLs so
// the emitted map references sources by name, next to the output.
func rebaseSources(data []byte, file string) []byte {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return data
	}

	if sources, ok := m["sources"].([]any); ok {
		for i, s := range sources {
			if str, ok := s.(string); ok {
				sources[i] = path.Base(strings.TrimPrefix(str, "file://"))
			}
		}
		m["sources"] = sources
	}
	m["file"] = strings.TrimSuffix(file, path.Ext(file)) + ".css"

	out, err := json.Marshal(m)
	if err != nil {
		return data
	}
	return out
}
