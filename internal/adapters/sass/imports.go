package sass

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/ess/internal/core/domain"
	"go.trai.ch/ess/internal/core/ports"
)

var importStmt = regexp.MustCompile(`(?m)^\s*@(?:import|use|forward)\s+([^;]+);`)

// ListImports walks the @import/@use/@forward graph of the source and
// returns the on-disk path of every transitively imported file. Targets that
// cannot be located are skipped; the compiler reports them with a proper
// diagnostic later, and dependency registration stays best effort.
func (c *Compiler) ListImports(ctx context.Context, src domain.Asset, opts ports.CompileOptions) ([]string, error) {
	roots := make([]string, 0, len(opts.LoadPaths)+1)
	if opts.Dir != "" {
		roots = append(roots, opts.Dir)
	}
	roots = append(roots, opts.LoadPaths...)

	visited := make(map[string]struct{})
	var imports []string

	var walk func(dir string, content []byte) error
	walk = func(dir string, content []byte) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		for _, target := range importTargets(content) {
			resolved, ok := resolvePartial(target, dir, roots)
			if !ok {
				continue
			}
			if _, seen := visited[resolved]; seen {
				continue
			}
			visited[resolved] = struct{}{}
			imports = append(imports, resolved)

			data, err := os.ReadFile(resolved) //nolint:gosec // Path comes from partial resolution
			if err != nil {
				continue
			}
			if err := walk(filepath.Dir(resolved), data); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(opts.Dir, src.Content); err != nil {
		return nil, err
	}
	return imports, nil
}

// importTargets extracts the quoted import targets of one source, dropping
// the forms Sass leaves to plain CSS (urls, .css suffixes, built-in
// modules).
func importTargets(content []byte) []string {
	var targets []string
	for _, match := range importStmt.FindAllSubmatch(content, -1) {
		for _, arg := range strings.Split(string(match[1]), ",") {
			arg = strings.TrimSpace(arg)
			// @use "x" as y; / @forward "x" show "x" first
			if i := strings.IndexAny(arg, " \t"); i >= 0 {
				arg = arg[:i]
			}
			if len(arg) < 2 {
				continue
			}
			if arg[0] != '"' && arg[0] != '\'' {
				continue
			}
			target := strings.Trim(arg, `"'`)
			if target == "" ||
				strings.HasPrefix(target, "http://") ||
				strings.HasPrefix(target, "https://") ||
				strings.HasPrefix(target, "sass:") ||
				strings.HasSuffix(target, ".css") {
				continue
			}
			targets = append(targets, target)
		}
	}
	return targets
}

// resolvePartial applies the Sass partial naming rules to locate target,
// trying the importing file's directory first and then each load path.
func resolvePartial(target, dir string, roots []string) (string, bool) {
	rel := filepath.FromSlash(target)
	sub, name := filepath.Dir(rel), filepath.Base(rel)

	var names []string
	switch filepath.Ext(name) {
	case ".scss", ".sass":
		names = []string{"_" + name, name}
	default:
		names = []string{
			"_" + name + ".scss", name + ".scss",
			"_" + name + ".sass", name + ".sass",
			filepath.Join(name, "_index.scss"), filepath.Join(name, "index.scss"),
		}
	}

	search := roots
	if dir != "" && (len(roots) == 0 || roots[0] != dir) {
		search = append([]string{dir}, roots...)
	}

	for _, root := range search {
		for _, candidate := range names {
			p := filepath.Join(root, sub, candidate)
			if info, err := os.Stat(p); err == nil && !info.IsDir() {
				return p, true
			}
		}
	}
	return "", false
}
