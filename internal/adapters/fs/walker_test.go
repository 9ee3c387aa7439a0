package fs_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/ess/internal/adapters/fs"
)

func TestWalker_Stylesheets(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "styles/main.scss", "")
	writeFile(t, root, "styles/theme.css", "")
	writeFile(t, root, "img/logo.svg", "")
	writeFile(t, root, "img/photo.png", "")
	writeFile(t, root, "readme.txt", "")
	writeFile(t, root, "node_modules/pkg/vendor.css", "")
	writeFile(t, root, ".ess/state.json", "")
	writeFile(t, root, ".git/config", "")

	var got []string
	for rel := range fs.NewWalker().Stylesheets(root) {
		got = append(got, rel)
	}
	slices.Sort(got)

	assert.Equal(t, []string{"img/logo.svg", "styles/main.scss", "styles/theme.css"}, got)
}

func TestWalker_StopsWhenYieldReturnsFalse(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.css", "")
	writeFile(t, root, "b.css", "")

	count := 0
	for range fs.NewWalker().Stylesheets(root) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
