package prune

import (
	"regexp"
	"strings"

	"go.trai.ch/ess/internal/core/ports"
)

var (
	pseudoPattern = regexp.MustCompile(`::?[a-zA-Z-]+(\([^()]*\))?`)
	attrPattern   = regexp.MustCompile(`\[[^\]]*\]`)
	tokenPattern  = regexp.MustCompile(`[.#]?-?[A-Za-z_][A-Za-z0-9_-]*`)
)

var _ ports.RulePruner = (*Pruner)(nil)

// Pruner implements ports.RulePruner with a conservative "may match"
// analysis: a rule survives unless every one of its selectors references a
// class, id or element name the template provably lacks.
type Pruner struct{}

// NewPruner creates a new Pruner.
func NewPruner() *Pruner {
	return &Pruner{}
}

// Prune analyzes css against template and returns the edited text plus a
// fresh line-based source map into the original css. When nothing is
// dropped, the input is returned with Changed == false and no map.
func (p *Pruner) Prune(css, template []byte, source string) (ports.PruneResult, error) {
	idx := indexTemplate(template)
	stmts := parse(string(css))

	kept, dropped := filter(stmts, idx)
	if dropped == 0 {
		return ports.PruneResult{CSS: css}, nil
	}

	r := &renderer{}
	r.render(kept, "")

	return ports.PruneResult{
		CSS:       []byte(r.out.String()),
		SourceMap: generateMap(source, source, r.mappings),
		Changed:   true,
		Dropped:   dropped,
	}, nil
}

// filter returns the statements the template can match and the number of
// dropped rules. Opaque at-rules are always kept; conditional groups keep
// only their surviving children and disappear when none survive.
func filter(stmts []statement, idx *templateIndex) ([]statement, int) {
	var kept []statement
	dropped := 0

	for _, st := range stmts {
		switch {
		case st.children != nil:
			children, d := filter(st.children, idx)
			dropped += d
			if len(children) == 0 && d > 0 {
				dropped++
				continue
			}
			st.children = children
			kept = append(kept, st)
		case st.at != "":
			kept = append(kept, st)
		default:
			if used(st.sels, idx) {
				kept = append(kept, st)
			} else {
				dropped++
			}
		}
	}
	return kept, dropped
}

func used(sels []string, idx *templateIndex) bool {
	for _, sel := range sels {
		if idx.mayMatch(sel) {
			return true
		}
	}
	// A rule without parseable selectors is kept, never guessed away.
	return len(sels) == 0
}

func selectorTokens(selector string) []string {
	return tokenPattern.FindAllString(selector, -1)
}

// renderer writes surviving statements and records, per generated line, the
// original line it came from.
type renderer struct {
	out      strings.Builder
	line     int
	mappings []mapping
}

func (r *renderer) render(stmts []statement, indent string) {
	for _, st := range stmts {
		if st.children != nil {
			r.writeLine(indent+st.prelude+" {", st.line)
			r.render(st.children, indent+"  ")
			r.writeLine(indent+"}", st.endLine)
			continue
		}
		for i, textLine := range strings.Split(st.text, "\n") {
			r.writeLine(indent+strings.TrimSpace(textLine), st.line+i)
		}
	}
}

func (r *renderer) writeLine(text string, srcLine int) {
	r.out.WriteString(text)
	r.out.WriteByte('\n')
	r.mappings = append(r.mappings, mapping{genLine: r.line, srcLine: srcLine})
	r.line++
}
