package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/roach88/snapdiff/internal/snapshot"
)

// SaveSnapshot inserts a snapshot into the history log.
// Uses ON CONFLICT(id) DO NOTHING for idempotency - duplicate IDs are
// silently ignored. Other constraint violations (e.g., NOT NULL) still
// return errors.
//
// The envelope is serialized to JSON; hash is the caller-computed content
// fingerprint of the descriptor's field map.
func (s *Store) SaveSnapshot(ctx context.Context, snap *snapshot.Snapshot, hash string) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (id, name, kind, captured_at, hash, body)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`,
		snap.ID,
		snap.Name,
		snap.Kind,
		snap.CapturedAt.UTC().Format(time.RFC3339Nano),
		hash,
		string(body),
	)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
