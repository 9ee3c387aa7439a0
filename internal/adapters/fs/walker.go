package fs

import (
	iofs "io/fs"
	"iter"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/ess/internal/core/domain"
)

// defaultIgnores are directory names never descended into when discovering
// stylesheet inputs.
var defaultIgnores = []string{".git", ".ess", "node_modules"}

// Walker discovers pipeline inputs under a root directory.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Stylesheets yields the root-relative, slash-separated paths of every file
// under root whose kind the pipeline handles. Ignored and hidden directories
// are skipped.
func (w *Walker) Stylesheets(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(p string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if p != root && w.ignored(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}

			if domain.KindOf(p) == domain.KindOther {
				return nil
			}

			rel, err := filepath.Rel(root, p)
			if err != nil {
				return err
			}

			if !yield(filepath.ToSlash(rel)) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

func (w *Walker) ignored(name string) bool {
	if strings.HasPrefix(name, ".") && name != "." {
		return true
	}
	return slices.Contains(defaultIgnores, name)
}
