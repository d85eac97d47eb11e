package snapshot

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/snapdiff/internal/diff"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.yaml")
	snap := &Snapshot{
		ID:         NewID(),
		Name:       "host",
		Kind:       KindHost,
		CapturedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Host:       testHost(),
	}

	require.NoError(t, SaveFile(path, snap))

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, snap.ID, loaded.ID)
	assert.Equal(t, snap.Name, loaded.Name)
	assert.Equal(t, snap.Kind, loaded.Kind)
	assert.True(t, snap.CapturedAt.Equal(loaded.CapturedAt))

	// Round-tripping must not disturb any diffable field.
	changed, err := diff.Compare(snap.Host, loaded.Host)
	require.NoError(t, err)
	assert.Empty(t, changed)
}

func TestSaveLoadBundleRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bundle.yaml")
	snap := &Snapshot{
		ID:         NewID(),
		Name:       "agent",
		Kind:       KindBundle,
		CapturedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Bundle:     testBundle(),
	}

	require.NoError(t, SaveFile(path, snap))

	loaded, err := LoadFile(path)
	require.NoError(t, err)

	changed, err := diff.Compare(snap.Bundle, loaded.Bundle)
	require.NoError(t, err)
	assert.Empty(t, changed)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadFileRejectsMismatchedKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	raw := "id: x\nname: n\nkind: host\ncaptured_at: 2026-08-30T12:00:00Z\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}

func TestLoadFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
