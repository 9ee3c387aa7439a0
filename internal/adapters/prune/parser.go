// Package prune drops CSS rules that a located HTML template cannot match.
package prune

import "strings"

// statement is one top-level CSS statement: a style rule, an opaque at-rule,
// or a conditional group rule whose children are pruned recursively.
type statement struct {
	text     string   // trimmed original text, empty for group rules
	prelude  string   // "@media (...)" for group rules
	at       string   // at-rule name, "" for style rules
	sels     []string // selector list for style rules
	children []statement
	line     int // 0-based start line in the source
	endLine  int // 0-based line of the closing brace / semicolon
}

// groupAtRules are the conditional at-rules whose bodies contain prunable
// style rules. Everything else (@font-face, @keyframes, ...) is opaque.
var groupAtRules = map[string]bool{
	"media":    true,
	"supports": true,
}

type parser struct {
	src  string
	pos  int
	line int
}

// parse splits a stylesheet into top-level statements. The scanner is
// deliberately tolerant: anything it cannot classify is kept as opaque text
// so pruning never destroys unknown constructs.
func parse(src string) []statement {
	p := &parser{src: src}
	return p.statements()
}

func (p *parser) statements() []statement {
	var out []statement
	for {
		p.skipSpace()
		if p.pos >= len(p.src) || p.src[p.pos] == '}' {
			return out
		}
		out = append(out, p.statement())
	}
}

func (p *parser) statement() statement {
	start, startLine := p.pos, p.line

	ch := p.scanTo("{;")
	if ch != '{' {
		text := strings.TrimSpace(p.src[start:p.pos])
		return statement{text: text, at: atName(text), line: startLine, endLine: p.line}
	}

	prelude := strings.TrimSpace(p.src[start : p.pos-1])
	name := atName(prelude)

	if groupAtRules[name] {
		children := p.statements()
		if p.pos < len(p.src) && p.src[p.pos] == '}' {
			p.pos++
		}
		return statement{prelude: prelude, at: name, children: children, line: startLine, endLine: p.line}
	}

	p.balanced()
	st := statement{text: strings.TrimSpace(p.src[start:p.pos]), at: name, line: startLine, endLine: p.line}
	if name == "" {
		st.sels = splitSelectors(prelude)
	}
	return st
}

// skipSpace advances over whitespace and comments, tracking line numbers.
func (p *parser) skipSpace() {
	for p.pos < len(p.src) {
		switch {
		case p.src[p.pos] == '\n':
			p.line++
			p.pos++
		case p.src[p.pos] == ' ' || p.src[p.pos] == '\t' || p.src[p.pos] == '\r':
			p.pos++
		case strings.HasPrefix(p.src[p.pos:], "/*"):
			p.comment()
		default:
			return
		}
	}
}

// scanTo advances until one of the stop bytes is found outside strings and
// comments, consumes it, and returns it. Returns 0 at end of input.
func (p *parser) scanTo(stops string) byte {
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		switch {
		case c == '\n':
			p.line++
			p.pos++
		case c == '"' || c == '\'':
			p.quoted(c)
		case strings.HasPrefix(p.src[p.pos:], "/*"):
			p.comment()
		case strings.IndexByte(stops, c) >= 0:
			p.pos++
			return c
		default:
			p.pos++
		}
	}
	return 0
}

// balanced consumes a block body whose opening brace was already consumed,
// up to and including the matching closing brace.
func (p *parser) balanced() {
	depth := 1
	for p.pos < len(p.src) && depth > 0 {
		c := p.src[p.pos]
		switch {
		case c == '\n':
			p.line++
			p.pos++
		case c == '"' || c == '\'':
			p.quoted(c)
		case strings.HasPrefix(p.src[p.pos:], "/*"):
			p.comment()
		case c == '{':
			depth++
			p.pos++
		case c == '}':
			depth--
			p.pos++
		default:
			p.pos++
		}
	}
}

func (p *parser) quoted(quote byte) {
	p.pos++
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c == '\\' {
			p.pos += 2
			continue
		}
		if c == '\n' {
			p.line++
		}
		p.pos++
		if c == quote {
			return
		}
	}
}

func (p *parser) comment() {
	p.pos += 2
	for p.pos < len(p.src) {
		if strings.HasPrefix(p.src[p.pos:], "*/") {
			p.pos += 2
			return
		}
		if p.src[p.pos] == '\n' {
			p.line++
		}
		p.pos++
	}
}

func atName(s string) string {
	if !strings.HasPrefix(s, "@") {
		return ""
	}
	s = s[1:]
	if i := strings.IndexAny(s, " \t\n("); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(s)
}

func splitSelectors(prelude string) []string {
	parts := strings.Split(prelude, ",")
	sels := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			sels = append(sels, part)
		}
	}
	return sels
}
