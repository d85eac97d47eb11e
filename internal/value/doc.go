// Package value defines the tagged value model that field comparison runs
// over.
//
// Value is a sealed interface with one variant per supported leaf category:
// Bool, Int, Float32, Float64, String, Bytes, Time, Seq (ordered sequence),
// Opt (first-class optional), and Ext (caller-registered extension kinds).
// Representing fields as tagged variants instead of raw interface{} boxes
// means a kind mismatch is caught by a single comparison of Kind tokens, not
// by a runtime cast that can fault mid-comparison.
//
// Two capabilities hang off the model:
//   - Equality: every variant implements Equal; it only reports, it never
//     fails. IEEE754 semantics are preserved for floats (NaN != NaN).
//   - Optionality: Opt carries presence as data. An Opt wrapping any
//     diffable value is itself diffable with no extra declarations.
//
// Extension kinds are open for registration via RegisterEquality; the
// registry is written during process startup and read-only afterwards, so
// concurrent comparisons need no locking beyond the registry's own.
package value
