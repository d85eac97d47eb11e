// Package snapshot defines the record types that the diff engine is used
// against: descriptors of the host environment and of installed bundles,
// captured as point-in-time snapshots.
//
// Each descriptor opts into comparison by implementing diff.Record with an
// explicit field enumeration - there is no reflection anywhere in the
// pipeline. Descriptors are wrapped in a Snapshot envelope (id, name,
// captured-at, content fingerprint) for persistence and for diffing across
// runs.
//
// Field population is deliberately one-way: Capture reads from the running
// system, LoadFile reads from YAML, and neither the differ nor the store
// ever writes back into a descriptor.
package snapshot
