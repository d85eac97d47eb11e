package diff

import (
	"github.com/roach88/snapdiff/internal/value"
)

// Compare extracts the field maps of two records of the same declared type
// and returns the names of the fields whose values are unequal, sorted
// lexicographically. Comparing a record against a structural copy of itself
// always yields an empty result.
//
// The first contract violation terminates the comparison with a
// *CompareError; no partial result is returned alongside an error.
func Compare(a, b Record) ([]string, error) {
	fieldsA := a.DiffFields()
	fieldsB := b.DiffFields()

	if len(fieldsA) != len(fieldsB) {
		return nil, newStructuralMismatch(len(fieldsA), len(fieldsB))
	}

	var changed []string
	for _, name := range fieldsA.SortedNames() {
		va := fieldsA[name]
		vb, ok := fieldsB[name]
		if !ok {
			return nil, newMissingField(name)
		}

		differs, err := compareField(name, va, vb)
		if err != nil {
			return nil, err
		}
		if differs {
			changed = append(changed, name)
		}
	}
	return changed, nil
}

// compareField decides whether one field pair differs.
//
// Order matters: the kind check runs first so that a mismatch is reported
// as such rather than as an inequality, then optionality short-circuits
// value comparison, then the equality capability is consulted. Equality
// itself never fails; every failure mode is screened out before it runs.
func compareField(name string, va, vb value.Value) (bool, error) {
	if va == nil || vb == nil {
		// A nil entry means the Record implementation left a hole.
		return false, newUnsupportedKind(name, "<nil>")
	}
	if va.Kind() != vb.Kind() {
		return false, newKindMismatch(name, va.Kind(), vb.Kind())
	}

	if oa, isOpt := va.(value.Opt); isOpt {
		ob := vb.(value.Opt)
		switch {
		case !oa.Present() && !ob.Present():
			// Absent on both sides: equal, no value comparison needed.
			return false, nil
		case oa.Present() != ob.Present():
			return true, nil
		default:
			return compareField(name, oa.Wrapped(), ob.Wrapped())
		}
	}

	if !value.Supported(va) || !value.Supported(vb) {
		return false, newUnsupportedKind(name, va.Kind())
	}
	return !va.Equal(vb), nil
}
