package domain

import "time"

// BuildRecord remembers the outcome of processing one input asset so an
// unchanged input can be skipped on the next run.
type BuildRecord struct {
	// Key is the asset key string of the input.
	Key string `json:"key"`
	// Fingerprint hashes the input content, the settings, and the declared
	// dependency files.
	Fingerprint uint64 `json:"fingerprint"`
	// Outputs are the asset key strings emitted for the input.
	Outputs []string `json:"outputs"`
	// Deps are the on-disk paths the input transitively depended on.
	Deps []string `json:"deps,omitempty"`
	// BuiltAt is when the record was written.
	BuiltAt time.Time `json:"builtAt"`
}
