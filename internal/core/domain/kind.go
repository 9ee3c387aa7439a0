package domain

import (
	"path"
	"strings"
)

// Kind classifies an input asset by its file extension.
// The pipeline dispatches on Kind exactly once per input instead of
// branching on string suffixes throughout.
type Kind uint8

const (
	// KindOther is any extension the pipeline does not handle.
	KindOther Kind = iota
	// KindSvg is an SVG image.
	KindSvg
	// KindCss is a plain CSS stylesheet.
	KindCss
	// KindScss is a Sass source in SCSS syntax.
	KindScss
	// KindSass is a Sass source in indented syntax.
	KindSass
	// KindMap is a source map.
	KindMap
)

// KindOf derives the Kind of a path from its final extension.
func KindOf(p string) Kind {
	switch strings.ToLower(path.Ext(p)) {
	case ".svg":
		return KindSvg
	case ".css":
		return KindCss
	case ".scss":
		return KindScss
	case ".sass":
		return KindSass
	case ".map":
		return KindMap
	default:
		return KindOther
	}
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindSvg:
		return "svg"
	case KindCss:
		return "css"
	case KindScss:
		return "scss"
	case KindSass:
		return "sass"
	case KindMap:
		return "map"
	default:
		return "other"
	}
}
