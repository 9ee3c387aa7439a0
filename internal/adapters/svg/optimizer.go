// Package svg implements the SVG optimization adapter.
package svg

import (
	"github.com/tdewolff/minify/v2"
	msvg "github.com/tdewolff/minify/v2/svg"
	"go.trai.ch/ess/internal/core/ports"
	"go.trai.ch/zerr"
)

const mimeType = "image/svg+xml"

var _ ports.SvgOptimizer = (*Optimizer)(nil)

// Optimizer implements ports.SvgOptimizer using the tdewolff minifier.
type Optimizer struct {
	m *minify.M
}

// NewOptimizer creates a new Optimizer.
func NewOptimizer() *Optimizer {
	m := minify.New()
	m.AddFunc(mimeType, msvg.Minify)
	return &Optimizer{m: m}
}

// Optimize returns a minified rendering of the SVG document.
func (o *Optimizer) Optimize(svg []byte) ([]byte, error) {
	out, err := o.m.Bytes(mimeType, svg)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to optimize svg")
	}
	return out, nil
}
