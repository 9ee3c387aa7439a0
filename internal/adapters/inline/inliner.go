// Package inline rewrites image references in CSS to embedded data URIs.
package inline

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.trai.ch/ess/internal/core/domain"
	"go.trai.ch/ess/internal/core/ports"
	"go.trai.ch/zerr"
)

// inlineFunction is the explicit marker for references that should be
// embedded even when plain url() references are left alone.
const inlineFunction = "inline-image("

var _ ports.ImageInliner = (*Rewriter)(nil)

// Rewriter implements ports.ImageInliner on a CSS token stream. Every
// eligible reference is fetched through the supplied FetchFunc; references
// that cannot be resolved are left untouched and reported as messages.
type Rewriter struct{}

// NewRewriter creates a new Rewriter.
func NewRewriter() *Rewriter {
	return &Rewriter{}
}

// Inline rewrites the asset's image references according to mode.
func (r *Rewriter) Inline(ctx context.Context, asset domain.Asset, mode domain.InlineMode, fetch ports.FetchFunc) (ports.InlineResult, error) {
	if mode == domain.InlineDisabled {
		return ports.InlineResult{CSS: asset.Content, OK: true}, nil
	}

	var out bytes.Buffer
	var messages []string
	changed := false

	lexer := css.NewLexer(parse.NewInputBytes(asset.Content))
	for {
		tt, text := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != io.EOF {
				return ports.InlineResult{}, zerr.Wrap(err, "failed to scan stylesheet")
			}
			return ports.InlineResult{CSS: out.Bytes(), Messages: messages, OK: true, Changed: changed}, nil

		case css.URLToken:
			if mode != domain.InlineAll {
				out.Write(text)
				continue
			}
			ref := unwrapURL(string(text))
			if uri, ok := r.embed(ctx, ref, asset.Key, fetch, &messages); ok {
				fmt.Fprintf(&out, "url(%q)", uri)
				changed = true
			} else {
				out.Write(text)
			}

		case css.FunctionToken:
			if !strings.EqualFold(string(text), inlineFunction) {
				out.Write(text)
				continue
			}
			ref, raw := r.functionArg(lexer)
			if uri, ok := r.embed(ctx, ref, asset.Key, fetch, &messages); ok {
				fmt.Fprintf(&out, "url(%q)", uri)
				changed = true
			} else {
				// Leave the unresolved call exactly as written.
				out.Write(text)
				out.Write(raw)
			}

		default:
			out.Write(text)
		}
	}
}

// functionArg consumes the argument tokens of an inline-image(...) call up
// to the closing parenthesis, returning the unquoted reference and the raw
// consumed bytes.
func (r *Rewriter) functionArg(lexer *css.Lexer) (string, []byte) {
	var ref string
	var raw []byte
	for {
		tt, text := lexer.Next()
		raw = append(raw, text...)
		switch tt {
		case css.ErrorToken, css.RightParenthesisToken:
			return ref, raw
		case css.StringToken:
			ref = strings.Trim(string(text), `"'`)
		case css.IdentToken, css.URLToken:
			if ref == "" {
				ref = unwrapURL(string(text))
			}
		}
	}
}

// embed fetches one reference and renders it as a data URI. A miss records
// a message and degrades to leaving the reference as written.
func (r *Rewriter) embed(ctx context.Context, ref string, from domain.AssetKey, fetch ports.FetchFunc, messages *[]string) (string, bool) {
	target := strings.TrimSpace(ref)
	if i := strings.IndexAny(target, "?#"); i >= 0 {
		target = target[:i]
	}
	if !embeddable(target) {
		return "", false
	}

	asset, err := fetch(ctx, target, from)
	if err != nil {
		*messages = append(*messages, fmt.Sprintf("could not inline %s: %v", ref, err))
		return "", false
	}
	return dataURI(target, asset.Content), true
}

// embeddable filters out references that are already embedded or remote.
func embeddable(ref string) bool {
	if ref == "" {
		return false
	}
	for _, prefix := range []string{"data:", "http://", "https://", "//"} {
		if strings.HasPrefix(ref, prefix) {
			return false
		}
	}
	return true
}

// dataURI renders content as a data URI. SVG stays readable as escaped
// UTF-8 text; every other format is base64 encoded.
func dataURI(ref string, content []byte) string {
	ext := strings.ToLower(path.Ext(ref))
	if ext == ".svg" {
		return "data:image/svg+xml;charset=utf-8," + svgEscaper.Replace(string(content))
	}

	mt := mime.TypeByExtension(ext)
	if mt == "" {
		mt = "application/octet-stream"
	}
	return "data:" + mt + ";base64," + base64.StdEncoding.EncodeToString(content)
}

var svgEscaper = strings.NewReplacer(
	"%", "%25",
	"#", "%23",
	"<", "%3C",
	">", "%3E",
	`"`, "%22",
	"\n", "",
	"\r", "",
)

// unwrapURL extracts the reference from a url(...) token or returns the
// text unchanged when it is not one.
func unwrapURL(text string) string {
	if len(text) < 5 || !strings.EqualFold(text[:4], "url(") {
		return strings.Trim(text, `"'`)
	}
	inner := strings.TrimSpace(text[4 : len(text)-1])
	return strings.Trim(inner, `"'`)
}
