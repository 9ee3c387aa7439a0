package domain

import "go.trai.ch/zerr"

// InlineMode selects which image references the inlining stage rewrites.
type InlineMode uint8

const (
	// InlineDisabled passes stylesheets through untouched.
	InlineDisabled InlineMode = iota
	// InlineLinked rewrites only explicit inline-image(...) references.
	InlineLinked
	// InlineAll additionally rewrites every discoverable url(...) reference.
	InlineAll
)

// ParseInlineMode parses the settings-file spelling of an InlineMode.
func ParseInlineMode(s string) (InlineMode, error) {
	switch s {
	case "", "linked":
		return InlineLinked, nil
	case "disabled":
		return InlineDisabled, nil
	case "all":
		return InlineAll, nil
	default:
		return InlineDisabled, zerr.With(ErrInvalidInlineMode, "mode", s)
	}
}

// String returns the settings-file spelling of the mode.
func (m InlineMode) String() string {
	switch m {
	case InlineLinked:
		return "linked"
	case InlineAll:
		return "all"
	default:
		return "disabled"
	}
}

// Settings is the static configuration snapshot for one pipeline invocation.
// It is read-only for the lifetime of the invocation.
type Settings struct {
	// Root is the primary location assets are resolved against.
	Root string
	// OutputDir, when set, receives emitted assets under their plain key
	// paths. When empty, outputs are written next to their sources with the
	// GeneratedMarker stamped on derived names.
	OutputDir string
	// SearchPaths are the auxiliary roots consulted, in order, after the
	// primary location misses.
	SearchPaths []string

	// CompileSass enables the Sass compilation stage.
	CompileSass bool
	// SassStyle is the output style passed to the compiler ("expanded" or
	// "compressed").
	SassStyle string
	// PruneCss enables dead-rule pruning against a located HTML template.
	PruneCss bool
	// OptimizeSvg enables in-place SVG optimization.
	OptimizeSvg bool
	// ImageInlining selects the url() rewriting policy.
	ImageInlining InlineMode
	// Verbose enables debug-level logging of stage detail.
	Verbose bool
}

// DefaultSettings returns the settings used when no essfile is present.
func DefaultSettings() Settings {
	return Settings{
		Root:          ".",
		CompileSass:   true,
		SassStyle:     "expanded",
		PruneCss:      true,
		OptimizeSvg:   true,
		ImageInlining: InlineLinked,
	}
}
