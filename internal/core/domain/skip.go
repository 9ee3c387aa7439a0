package domain

import (
	"path"
	"regexp"
	"strings"
)

// GeneratedMarker is the marker segment stamped on derived intermediates
// written next to their sources (style.ess.scss.css). Files carrying it are
// never picked up as primary inputs again.
const GeneratedMarker = ".ess."

// partialPrefix is the Sass naming convention for private partials.
const partialPrefix = "_"

var generatedPattern = regexp.MustCompile(`\.ess\.[^.]+\.css(\.map)?$`)

// ShouldSkip reports whether a candidate input must be left untransformed.
// Sass private partials and previously generated intermediates are skipped.
func ShouldSkip(p string) bool {
	base := path.Base(p)
	if strings.HasPrefix(base, partialPrefix) {
		return true
	}
	return generatedPattern.MatchString(base)
}
