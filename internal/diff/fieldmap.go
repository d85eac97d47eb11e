package diff

import (
	"sort"

	"github.com/roach88/snapdiff/internal/value"
)

// FieldMap is one record's name -> value snapshot, built fresh per
// comparison and discarded after it. Field names are unique within a
// record; insertion order carries no meaning.
type FieldMap map[string]value.Value

// Record is the opt-in contract for diffable types. Implementations
// enumerate every declared field explicitly; the field set must be
// identical for all instances of the same type, and DiffFields must be
// deterministic (same instance, same map contents) and side-effect free.
type Record interface {
	DiffFields() FieldMap
}

// SortedNames returns the field names in lexicographic order. Used to make
// iteration and reported diffs deterministic.
func (m FieldMap) SortedNames() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
