package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/roach88/snapdiff/internal/snapshot"
)

// ErrNotFound indicates no snapshot matched the query.
var ErrNotFound = errors.New("snapshot not found")

// Entry is one history row: the stored envelope plus its content hash.
type Entry struct {
	Snapshot *snapshot.Snapshot
	Hash     string
}

// GetSnapshot returns the snapshot with the given id.
// Returns ErrNotFound if no such row exists.
func (s *Store) GetSnapshot(ctx context.Context, id string) (*Entry, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT hash, body FROM snapshots WHERE id = ?
	`, id)

	entry, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("snapshot %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get snapshot %s: %w", id, err)
	}
	return entry, nil
}

// Latest returns up to n most recent snapshots for a name, newest first.
// Ordering uses the time-ordered id, so it is deterministic even when two
// captures share a wall-clock timestamp.
//
// Returns an empty slice (not nil) if the name has no history.
func (s *Store) Latest(ctx context.Context, name string, n int) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT hash, body FROM snapshots
		WHERE name = ?
		ORDER BY id COLLATE BINARY DESC
		LIMIT ?
	`, name, n)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

// List returns the full history for a name, oldest first.
//
// Returns an empty slice (not nil) if the name has no history.
func (s *Store) List(ctx context.Context, name string) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT hash, body FROM snapshots
		WHERE name = ?
		ORDER BY id COLLATE BINARY ASC
	`, name)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var hash, body string
	if err := row.Scan(&hash, &body); err != nil {
		return nil, err
	}

	var snap snapshot.Snapshot
	if err := json.Unmarshal([]byte(body), &snap); err != nil {
		return nil, fmt.Errorf("decode snapshot body: %w", err)
	}
	return &Entry{Snapshot: &snap, Hash: hash}, nil
}

func collectEntries(rows *sql.Rows) ([]*Entry, error) {
	entries := []*Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate snapshots: %w", err)
	}
	return entries, nil
}
