package ports

// PruneResult is the output of one pruning pass.
type PruneResult struct {
	// CSS is the edited stylesheet text.
	CSS []byte
	// SourceMap maps CSS back into the original stylesheet text, not into
	// any prior map.
	SourceMap []byte
	// Changed reports whether any rule was dropped. When false the caller
	// keeps its input untouched.
	Changed bool
	// Dropped is the number of removed rules.
	Dropped int
}

// RulePruner drops CSS rules that the given HTML template cannot reference.
// The selector-usage analysis is delegated to the implementation; callers
// only rely on the result shape and on idempotence: pruning an already
// pruned sheet against the same template yields Changed == false.
//
//go:generate mockgen -source=pruner.go -destination=mocks/mock_pruner.go -package=mocks
type RulePruner interface {
	// Prune analyzes css against template. source names the original
	// stylesheet inside the generated source map.
	Prune(css, template []byte, source string) (PruneResult, error)
}
