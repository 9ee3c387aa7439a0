package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestRun_EmbedsReferencesToStdout(t *testing.T) {
	dir := t.TempDir()
	assets := t.TempDir()
	writeFile(t, assets, "logo.svg", `<svg xmlns="http://www.w3.org/2000/svg"/>`)
	input := writeFile(t, dir, "a.css", ".a { background: url(logo.svg); }")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{assets}, input, "-", &out))

	assert.Contains(t, out.String(), "data:image/svg+xml")
	assert.NotContains(t, out.String(), "url(logo.svg)")
}

func TestRun_WritesOutputFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "dot.png", "png-bytes")
	input := writeFile(t, dir, "a.css", ".a { background: inline-image(\"dot.png\"); }")
	output := filepath.Join(dir, "a.out.css")

	require.NoError(t, run(context.Background(), nil, input, output, io.Discard))

	css, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(css), "data:image/png;base64,")
}

func TestRun_UnresolvableReferenceStaysIntact(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "a.css", ".a { background: url(missing.png); }")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), nil, input, "-", &out))

	assert.Contains(t, out.String(), "url(missing.png)")
}

func TestRun_MissingInputFails(t *testing.T) {
	err := run(context.Background(), nil, filepath.Join(t.TempDir(), "absent.css"), "-", io.Discard)

	assert.Error(t, err)
}

func TestCommand_RequiresInputAndOutput(t *testing.T) {
	cmd := newCommand()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"only-input.css"})

	assert.Error(t, cmd.Execute())
}
