package cli

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/roach88/snapdiff/internal/snapshot"
	"github.com/roach88/snapdiff/internal/store"
)

func seedSnapshot(id string, cpus int64) *snapshot.Snapshot {
	return &snapshot.Snapshot{
		ID:         id,
		Name:       "host",
		Kind:       snapshot.KindHost,
		CapturedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Host: &snapshot.HostDescriptor{
			Hostname:  "alpha",
			OS:        "linux",
			Arch:      "amd64",
			CPUs:      cpus,
			Runtime:   "go1.25.0",
			EnvDigest: []byte{0x01},
		},
	}
}

// seedHistory creates a database with two host snapshots whose cpus differ.
func seedHistory(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := store.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	for _, snap := range []*snapshot.Snapshot{seedSnapshot("0001", 8), seedSnapshot("0002", 16)} {
		hash, err := snapshot.Fingerprint(snap.Host)
		require.NoError(t, err)
		require.NoError(t, db.SaveSnapshot(ctx, snap, hash))
	}
	return dbPath
}

// seedSingleSnapshot creates a database holding one host snapshot.
func seedSingleSnapshot(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	db, err := store.Open(dbPath)
	require.NoError(t, err)
	defer db.Close()

	snap := seedSnapshot("0001", 8)
	hash, err := snapshot.Fingerprint(snap.Host)
	require.NoError(t, err)
	require.NoError(t, db.SaveSnapshot(context.Background(), snap, hash))
	return dbPath
}
