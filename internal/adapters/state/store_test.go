package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ess/internal/core/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	store, err := NewStore(path)
	require.NoError(t, err)

	record := domain.BuildRecord{
		Key:         "ess|styles/main.scss",
		Fingerprint: 42,
		Outputs:     []string{"ess|styles/main.css", "ess|styles/main.css.map"},
		BuiltAt:     time.Now().UTC(),
	}
	require.NoError(t, store.Put(record))

	got, err := store.Get(record.Key)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, record.Fingerprint, got.Fingerprint)
	assert.Equal(t, record.Outputs, got.Outputs)
}

func TestStore_MissingRecord(t *testing.T) {
	store, err := NewStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)

	got, err := store.Get("ess|unknown.css")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	first, err := NewStore(path)
	require.NoError(t, err)
	require.NoError(t, first.Put(domain.BuildRecord{Key: "ess|a.css", Fingerprint: 7}))

	second, err := NewStore(path)
	require.NoError(t, err)
	got, err := second.Get("ess|a.css")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint64(7), got.Fingerprint)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewStore(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStateReadFailed)
}
