package commands_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ess/cmd/ess/commands"
	"go.trai.ch/ess/internal/adapters/config"
	"go.trai.ch/ess/internal/adapters/fs"
	"go.trai.ch/ess/internal/adapters/inline"
	"go.trai.ch/ess/internal/adapters/logger"
	"go.trai.ch/ess/internal/adapters/prune"
	"go.trai.ch/ess/internal/adapters/sass"
	"go.trai.ch/ess/internal/adapters/state"
	"go.trai.ch/ess/internal/adapters/svg"
	"go.trai.ch/ess/internal/adapters/telemetry"
	"go.trai.ch/ess/internal/app"
)

func newCLI(t *testing.T, root string) *commands.CLI {
	t.Helper()
	store, err := state.NewStore(filepath.Join(root, ".ess", "state.json"))
	require.NoError(t, err)

	lg := logger.New()
	lg.SetOutput(io.Discard)

	a := app.New(
		&config.FileSettingsLoader{},
		fs.Factory{},
		sass.NewCompiler(lg),
		prune.NewPruner(),
		inline.NewRewriter(),
		svg.NewOptimizer(),
		store,
		telemetry.NewNoOp(),
		lg,
		fs.NewWalker(),
		fs.NewHasher(),
	)
	return commands.New(a)
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestVersionFlag(t *testing.T) {
	cli := newCLI(t, t.TempDir())
	var out bytes.Buffer
	cli.SetOut(&out)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))

	assert.Contains(t, out.String(), "version dev")
}

func TestPlanCommand(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "style.css", ".a {}")
	writeFile(t, root, "notes.css.map", "{}")
	t.Chdir(root)

	cli := newCLI(t, root)
	var out bytes.Buffer
	cli.SetOut(&out)
	cli.SetArgs([]string{"plan"})

	require.NoError(t, cli.Execute(context.Background()))

	assert.Contains(t, out.String(), "ess|style.css -> ess|style.css\n")
	assert.Contains(t, out.String(), "ess|style.css -> ess|style.css.map\n")
	assert.Contains(t, out.String(), "ess|notes.css.map -> (nothing)\n")
}

func TestRunCommand(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "style.css", ".used { color: red; }\n.unused { color: blue; }\n")
	writeFile(t, root, "style.html", `<html><body><p class="used"></p></body></html>`)
	t.Chdir(root)

	cli := newCLI(t, root)
	cli.SetArgs([]string{"run", "style.css"})

	require.NoError(t, cli.Execute(context.Background()))

	css, err := os.ReadFile(filepath.Join(root, "style.ess.css.css"))
	require.NoError(t, err)
	assert.NotContains(t, string(css), ".unused")
}

func TestUnknownCommandFails(t *testing.T) {
	cli := newCLI(t, t.TempDir())
	cli.SetOut(io.Discard)
	cli.SetArgs([]string{"frobnicate"})

	assert.Error(t, cli.Execute(context.Background()))
}
