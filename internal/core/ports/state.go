package ports

import "go.trai.ch/ess/internal/core/domain"

// BuildRecordStore persists per-asset build records between runs.
//
//go:generate mockgen -source=state.go -destination=mocks/mock_state.go -package=mocks
type BuildRecordStore interface {
	// Get retrieves the record for an asset key string. A missing record
	// yields (nil, nil).
	Get(key string) (*domain.BuildRecord, error)
	// Put stores the record.
	Put(record domain.BuildRecord) error
}
