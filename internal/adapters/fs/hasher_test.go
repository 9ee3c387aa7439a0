package fs_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ess/internal/adapters/fs"
	"go.trai.ch/ess/internal/core/domain"
)

func TestHasher_StableAcrossDepOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "_a.scss", "a")
	writeFile(t, dir, "_b.scss", "b")
	depA := filepath.Join(dir, "_a.scss")
	depB := filepath.Join(dir, "_b.scss")

	hasher := fs.NewHasher()
	settings := domain.DefaultSettings()

	first, err := hasher.Fingerprint([]byte("x"), settings, []string{depA, depB})
	require.NoError(t, err)
	second, err := hasher.Fingerprint([]byte("x"), settings, []string{depB, depA})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHasher_SensitiveToInputs(t *testing.T) {
	hasher := fs.NewHasher()
	settings := domain.DefaultSettings()

	base, err := hasher.Fingerprint([]byte("x"), settings, nil)
	require.NoError(t, err)

	changedContent, err := hasher.Fingerprint([]byte("y"), settings, nil)
	require.NoError(t, err)
	assert.NotEqual(t, base, changedContent)

	changedSettings := settings
	changedSettings.PruneCss = false
	changedFlags, err := hasher.Fingerprint([]byte("x"), changedSettings, nil)
	require.NoError(t, err)
	assert.NotEqual(t, base, changedFlags)
}

func TestHasher_SensitiveToDepContent(t *testing.T) {
	dir := t.TempDir()
	dep := filepath.Join(dir, "_vars.scss")

	hasher := fs.NewHasher()
	settings := domain.DefaultSettings()

	writeFile(t, dir, "_vars.scss", "$c: red;")
	before, err := hasher.Fingerprint([]byte("x"), settings, []string{dep})
	require.NoError(t, err)

	writeFile(t, dir, "_vars.scss", "$c: blue;")
	after, err := hasher.Fingerprint([]byte("x"), settings, []string{dep})
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestHasher_MissingDep(t *testing.T) {
	hasher := fs.NewHasher()

	_, err := hasher.Fingerprint([]byte("x"), domain.DefaultSettings(), []string{filepath.Join(t.TempDir(), "gone.scss")})
	assert.Error(t, err)
}
