// Package store provides SQLite-backed storage for snapshot history.
//
// The store is an append-only log of captured snapshots, keyed by a
// time-ordered UUIDv7 id. Change detection across runs reads the latest two
// snapshots for a name and hands their descriptors to the differ; the store
// itself never compares anything.
//
// Rows carry a content fingerprint (SHA-256 of the canonical field map) so
// a capture that changed nothing can be skipped without deserializing the
// previous body.
//
// # Database Configuration
//
//   - WAL mode: concurrent reads during writes
//   - synchronous=NORMAL: balance durability/performance
//   - busy_timeout=5000: wait for locks up to 5 seconds
//   - foreign_keys=ON: enforce referential integrity
//
// All listing queries order by id COLLATE BINARY; UUIDv7 ids are
// time-ordered, so this is capture order without depending on wall-clock
// column comparisons.
package store
