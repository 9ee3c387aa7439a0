package ports

import "go.trai.ch/ess/internal/core/domain"

// BuildContext is the collaborator bundle a host build graph supplies to one
// pipeline invocation. The standalone runner provides a disk-backed
// implementation; an embedding host provides its own.
//
//go:generate mockgen -source=buildctx.go -destination=mocks/mock_buildctx.go -package=mocks
type BuildContext interface {
	// Primary returns the asset this invocation was triggered for.
	Primary() domain.Asset

	// Consume marks an input as fully handled, removing it from the graph.
	Consume(id domain.AssetKey)

	// DeclareOutput registers a potential output during the planning phase.
	DeclareOutput(id domain.AssetKey)

	// AddOutput emits a result asset.
	AddOutput(asset domain.Asset)

	// DeclareDependency registers a file the primary input transitively
	// depends on, so the host re-triggers this transform when it changes.
	DeclareDependency(path string)

	// Logger returns the structured logger for this invocation.
	Logger() Logger
}
