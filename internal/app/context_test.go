package app

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ess/internal/adapters/logger"
	"go.trai.ch/ess/internal/core/domain"
)

func discardLogger() *logger.Logger {
	lg := logger.New()
	lg.SetOutput(io.Discard)
	return lg
}

func key(path string) domain.AssetKey {
	return domain.NewAssetKey("ess", path)
}

func TestOutputPath_InPlaceStampsGeneratedMarker(t *testing.T) {
	cases := []struct {
		name    string
		primary string
		output  string
		want    string
	}{
		{"sass css", "style.scss", "style.css", "style.ess.scss.css"},
		{"sass map", "style.scss", "style.css.map", "style.ess.scss.css.map"},
		{"plain css", "style.css", "style.css", "style.ess.css.css"},
		{"nested", "sub/style.scss", "sub/style.css", filepath.Join("sub", "style.ess.scss.css")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newDiskContext(domain.NewAsset(key(tc.primary), nil), "/root", "", discardLogger())

			got := c.outputPath(key(tc.output))

			assert.Equal(t, filepath.Join("/root", tc.want), got)
		})
	}
}

func TestOutputPath_SvgOverwritesInPlace(t *testing.T) {
	c := newDiskContext(domain.NewAsset(key("icons/logo.svg"), nil), "/root", "", discardLogger())

	got := c.outputPath(key("icons/logo.svg"))

	assert.Equal(t, filepath.Join("/root", "icons", "logo.svg"), got)
}

func TestOutputPath_OutputDirKeepsPlainPaths(t *testing.T) {
	c := newDiskContext(domain.NewAsset(key("sub/style.scss"), nil), "/root", "/out", discardLogger())

	assert.Equal(t, filepath.Join("/out", "sub", "style.css"), c.outputPath(key("sub/style.css")))
	assert.Equal(t, filepath.Join("/out", "sub", "style.css.map"), c.outputPath(key("sub/style.css.map")))
}

func TestFlush_WritesCollectedOutputs(t *testing.T) {
	root := t.TempDir()
	c := newDiskContext(domain.NewAsset(key("style.scss"), nil), root, "", discardLogger())
	c.AddOutput(domain.NewAsset(key("style.css"), []byte(".a {}")))
	c.AddOutput(domain.NewAsset(key("style.css.map"), []byte("{}")))

	require.NoError(t, c.Flush())

	css, err := os.ReadFile(filepath.Join(root, "style.ess.scss.css"))
	require.NoError(t, err)
	assert.Equal(t, ".a {}", string(css))
	_, err = os.Stat(filepath.Join(root, "style.ess.scss.css.map"))
	assert.NoError(t, err)
}

func TestFlush_CreatesOutputDirectories(t *testing.T) {
	root := t.TempDir()
	outDir := filepath.Join(root, "dist")
	c := newDiskContext(domain.NewAsset(key("sub/style.scss"), nil), root, outDir, discardLogger())
	c.AddOutput(domain.NewAsset(key("sub/style.css"), []byte(".a {}")))

	require.NoError(t, c.Flush())

	_, err := os.Stat(filepath.Join(outDir, "sub", "style.css"))
	assert.NoError(t, err)
}

func TestDependencies_SortedAndDeduplicated(t *testing.T) {
	c := newDiskContext(domain.NewAsset(key("style.scss"), nil), "/root", "", discardLogger())
	c.DeclareDependency("/b/_vars.scss")
	c.DeclareDependency("/a/_mixins.scss")
	c.DeclareDependency("/b/_vars.scss")

	assert.Equal(t, []string{"/a/_mixins.scss", "/b/_vars.scss"}, c.Dependencies())
}

func TestConsume_OnlyMarksPrimary(t *testing.T) {
	c := newDiskContext(domain.NewAsset(key("style.css"), nil), "/root", "", discardLogger())

	c.Consume(key("other.css"))
	assert.False(t, c.consumed)

	c.Consume(key("style.css"))
	assert.True(t, c.consumed)
}
