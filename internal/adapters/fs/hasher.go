package fs

import (
	"os"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/ess/internal/core/domain"
	"go.trai.ch/zerr"
)

// Hasher computes the incremental-state fingerprint of a pipeline input.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Fingerprint hashes the input content, the settings that influence its
// outputs, and the content of every declared dependency. Dependency order
// does not affect the result.
func (h *Hasher) Fingerprint(content []byte, settings domain.Settings, deps []string) (uint64, error) {
	digest := xxhash.New()

	_, _ = digest.Write(content)
	_, _ = digest.Write([]byte{0})

	h.hashSettings(settings, digest)

	sorted := make([]string, len(deps))
	copy(sorted, deps)
	sort.Strings(sorted)

	for _, dep := range sorted {
		data, err := os.ReadFile(dep) //nolint:gosec // Dependency paths come from the import walker
		if err != nil {
			return 0, zerr.With(zerr.Wrap(err, "failed to hash dependency"), "path", dep)
		}
		_, _ = digest.WriteString(dep)
		_, _ = digest.Write([]byte{0})
		_, _ = digest.Write(data)
		_, _ = digest.Write([]byte{0})
	}

	return digest.Sum64(), nil
}

func (h *Hasher) hashSettings(s domain.Settings, digest *xxhash.Digest) {
	flags := []byte{
		boolByte(s.CompileSass),
		boolByte(s.PruneCss),
		boolByte(s.OptimizeSvg),
		byte(s.ImageInlining),
	}
	_, _ = digest.Write(flags)
	_, _ = digest.WriteString(s.SassStyle)
	_, _ = digest.Write([]byte{0})
	for _, sp := range s.SearchPaths {
		_, _ = digest.WriteString(sp)
		_, _ = digest.Write([]byte{0})
	}
}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}
