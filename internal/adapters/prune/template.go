package prune

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// templateIndex holds the element names, classes and ids a template can
// match.
type templateIndex struct {
	elements map[string]struct{}
	classes  map[string]struct{}
	ids      map[string]struct{}
}

// alwaysPresent are element names treated as matchable even when the
// template fragment does not spell them out.
var alwaysPresent = []string{"html", "body", "head"}

// indexTemplate tokenizes the HTML template and collects everything a
// selector could reference. Parse errors terminate the scan silently; a
// partial index only makes pruning more conservative on the scanned part.
func indexTemplate(tpl []byte) *templateIndex {
	idx := &templateIndex{
		elements: make(map[string]struct{}),
		classes:  make(map[string]struct{}),
		ids:      make(map[string]struct{}),
	}
	for _, name := range alwaysPresent {
		idx.elements[name] = struct{}{}
	}

	z := html.NewTokenizer(bytes.NewReader(tpl))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return idx
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}

		name, hasAttr := z.TagName()
		idx.elements[strings.ToLower(string(name))] = struct{}{}

		for hasAttr {
			var key, val []byte
			key, val, hasAttr = z.TagAttr()
			switch string(key) {
			case "class":
				for _, cls := range strings.Fields(string(val)) {
					idx.classes[cls] = struct{}{}
				}
			case "id":
				idx.ids[strings.TrimSpace(string(val))] = struct{}{}
			}
		}
	}
}

// mayMatch reports whether the template could match the selector. Pseudo
// classes/elements and attribute conditions are ignored, which only errs on
// the side of keeping a rule.
func (idx *templateIndex) mayMatch(selector string) bool {
	stripped := stripNonStructural(selector)

	for _, token := range selectorTokens(stripped) {
		switch token[0] {
		case '.':
			if _, ok := idx.classes[token[1:]]; !ok {
				return false
			}
		case '#':
			if _, ok := idx.ids[token[1:]]; !ok {
				return false
			}
		default:
			if _, ok := idx.elements[strings.ToLower(token)]; !ok {
				return false
			}
		}
	}
	return true
}

// stripNonStructural removes pseudo selectors and attribute conditions.
func stripNonStructural(selector string) string {
	selector = pseudoPattern.ReplaceAllString(selector, "")
	return attrPattern.ReplaceAllString(selector, "")
}
