package pipeline

import (
	"go.trai.ch/ess/internal/core/domain"
	"go.trai.ch/ess/internal/core/ports"
)

// Outputs is the planning half of the pipeline: given an input key and the
// settings, it returns every key the apply phase may emit. Pure, no I/O.
func Outputs(key domain.AssetKey, settings domain.Settings) []domain.AssetKey {
	if domain.ShouldSkip(key.Path) {
		return nil
	}

	switch domain.KindOf(key.Path) {
	case domain.KindSvg:
		return []domain.AssetKey{key}
	case domain.KindCss:
		return []domain.AssetKey{key, key.MapKey()}
	case domain.KindScss, domain.KindSass:
		if !settings.CompileSass {
			return nil
		}
		css := key.ChangeExtension(".css")
		return []domain.AssetKey{css, css.MapKey()}
	default:
		// KindMap and KindOther produce nothing. Maps are always derived,
		// never passed through.
		return nil
	}
}

// Declare registers the planned outputs for the context's primary input.
func (p *Pipeline) Declare(bc ports.BuildContext) {
	for _, key := range Outputs(bc.Primary().Key, p.settings) {
		bc.DeclareOutput(key)
	}
}
