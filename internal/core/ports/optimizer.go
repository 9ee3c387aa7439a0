package ports

// SvgOptimizer shrinks SVG text content. The optimization algorithm itself
// is delegated; the pipeline only relies on output being valid SVG for the
// same image.
//
//go:generate mockgen -source=optimizer.go -destination=mocks/mock_optimizer.go -package=mocks
type SvgOptimizer interface {
	Optimize(svg []byte) ([]byte, error)
}
