// Package diff implements structural field-by-field comparison of record
// snapshots.
//
// A record opts in by implementing Record: it enumerates its fields into a
// FieldMap of tagged values (see internal/value). Compare takes two records
// of the same declared type and returns the names of the fields whose values
// differ. No value-level delta is computed - only names are reported.
//
// The comparison is pure: it reads both records once, allocates its own
// field maps, mutates nothing, and holds no state between calls. Concurrent
// comparisons over independent record pairs need no coordination.
//
// Errors are defensive guards, not expected outcomes. Two well-formed
// instances of the same type never trip them; when one fires it means the
// Record implementation is broken (inconsistent field sets), the two
// instances are not really the same type (kind mismatch on a field), or a
// custom leaf kind was never registered with the equality capability. The
// first error terminates the call with no partial result.
package diff
