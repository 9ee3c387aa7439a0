package app_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ess/internal/adapters/config"
	"go.trai.ch/ess/internal/adapters/fs"
	"go.trai.ch/ess/internal/adapters/inline"
	"go.trai.ch/ess/internal/adapters/logger"
	"go.trai.ch/ess/internal/adapters/prune"
	"go.trai.ch/ess/internal/adapters/state"
	"go.trai.ch/ess/internal/adapters/svg"
	"go.trai.ch/ess/internal/adapters/telemetry"
	"go.trai.ch/ess/internal/app"
	"go.trai.ch/ess/internal/core/domain"
	"go.trai.ch/ess/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newTestApp(t *testing.T, root string) *app.App {
	t.Helper()
	store, err := state.NewStore(filepath.Join(root, ".ess", "state.json"))
	require.NoError(t, err)

	lg := logger.New()
	lg.SetOutput(io.Discard)

	return app.New(
		&config.FileSettingsLoader{},
		fs.Factory{},
		mocks.NewMockSassCompiler(gomock.NewController(t)),
		prune.NewPruner(),
		inline.NewRewriter(),
		svg.NewOptimizer(),
		store,
		telemetry.NewNoOp(),
		lg,
		fs.NewWalker(),
		fs.NewHasher(),
	)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestRun_ProcessesDiscoveredInputs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "style.css", ".used { color: red; }\n.unused { color: blue; }\n")
	writeFile(t, root, "style.html", `<html><body><p class="used"></p></body></html>`)
	svgPath := writeFile(t, root, "logo.svg", `<svg xmlns="http://www.w3.org/2000/svg">
  <!-- drop me -->
  <rect width="16" height="16"/>
</svg>`)

	require.NoError(t, newTestApp(t, root).Run(context.Background(), root, nil, app.RunOptions{}))

	css, err := os.ReadFile(filepath.Join(root, "style.ess.css.css"))
	require.NoError(t, err)
	assert.Contains(t, string(css), ".used")
	assert.NotContains(t, string(css), ".unused")

	_, err = os.Stat(filepath.Join(root, "style.ess.css.css.map"))
	assert.NoError(t, err, "pruning must emit a source map next to the css")

	optimized, err := os.ReadFile(svgPath)
	require.NoError(t, err)
	assert.NotContains(t, string(optimized), "drop me")

	_, err = os.Stat(filepath.Join(root, ".ess", "state.json"))
	assert.NoError(t, err)
}

func TestRun_SecondRunIsCached(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "style.css", ".used { color: red; }\n.unused { color: blue; }\n")
	writeFile(t, root, "style.html", `<html><body><p class="used"></p></body></html>`)

	a := newTestApp(t, root)
	require.NoError(t, a.Run(context.Background(), root, []string{"style.css"}, app.RunOptions{}))

	generated := filepath.Join(root, "style.ess.css.css")
	require.NoError(t, os.Remove(generated))

	require.NoError(t, a.Run(context.Background(), root, []string{"style.css"}, app.RunOptions{}))
	_, err := os.Stat(generated)
	assert.True(t, os.IsNotExist(err), "an unchanged input must not be reprocessed")

	require.NoError(t, a.Run(context.Background(), root, []string{"style.css"}, app.RunOptions{NoCache: true}))
	_, err = os.Stat(generated)
	assert.NoError(t, err, "--no-cache must force reprocessing")
}

func TestRun_EditInvalidatesCache(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "style.css", ".used { color: red; }\n.unused { color: blue; }\n")
	writeFile(t, root, "style.html", `<html><body><p class="used"></p></body></html>`)

	a := newTestApp(t, root)
	require.NoError(t, a.Run(context.Background(), root, []string{"style.css"}, app.RunOptions{}))

	generated := filepath.Join(root, "style.ess.css.css")
	require.NoError(t, os.Remove(generated))
	writeFile(t, root, "style.css", ".used { color: green; }\n.unused { color: blue; }\n")

	require.NoError(t, a.Run(context.Background(), root, []string{"style.css"}, app.RunOptions{}))
	css, err := os.ReadFile(generated)
	require.NoError(t, err)
	assert.Contains(t, string(css), "green")
}

func TestRun_ReportsFailedInputs(t *testing.T) {
	root := t.TempDir()

	err := newTestApp(t, root).Run(context.Background(), root, []string{"missing.css"}, app.RunOptions{})

	assert.ErrorIs(t, err, domain.ErrPipelineFailed)
}

func TestPlan_MapsInputsToDeclaredOutputs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "style.css", ".a {}")
	writeFile(t, root, "logo.svg", "<svg/>")

	plan, err := newTestApp(t, root).Plan(root, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"ess|style.css", "ess|style.css.map"}, plan["ess|style.css"])
	assert.Equal(t, []string{"ess|logo.svg"}, plan["ess|logo.svg"])
}
