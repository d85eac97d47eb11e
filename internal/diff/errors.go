package diff

import (
	"errors"
	"fmt"

	"github.com/roach88/snapdiff/internal/value"
)

// CompareError represents a failed comparison.
//
// Comparison errors indicate a broken contract, not a legitimate
// difference:
//   - Structural mismatch: the two field maps have different cardinality
//   - Missing field: a field name exists on one side only
//   - Kind mismatch: the same field holds values of different kinds
//   - Unsupported kind: a field's kind has no equality capability
//
// CompareError includes structured fields for diagnostics; the caller is
// expected to fix the Record implementation or register the missing
// capability, not to retry.
type CompareError struct {
	// Code identifies the error category.
	Code CompareErrorCode

	// Message is a human-readable description.
	Message string

	// Field identifies the offending field, where one is known.
	Field string

	// KindA and KindB carry the offending value kind(s).
	KindA value.Kind
	KindB value.Kind
}

// CompareErrorCode categorizes comparison errors.
type CompareErrorCode string

const (
	// ErrCodeStructuralMismatch indicates the two extracted field sets have
	// different cardinality.
	ErrCodeStructuralMismatch CompareErrorCode = "STRUCTURAL_MISMATCH"

	// ErrCodeMissingField indicates a field present on one side is absent
	// on the other.
	ErrCodeMissingField CompareErrorCode = "MISSING_FIELD"

	// ErrCodeKindMismatch indicates the same field name holds values of
	// different runtime kinds.
	ErrCodeKindMismatch CompareErrorCode = "TYPE_MISMATCH"

	// ErrCodeUnsupportedKind indicates a field's value participates in
	// neither the equality nor the optionality capability.
	ErrCodeUnsupportedKind CompareErrorCode = "UNSUPPORTED_TYPE"
)

// Error implements the error interface.
func (e *CompareError) Error() string {
	if e.Field != "" && e.KindA != "" && e.KindB != "" {
		return fmt.Sprintf("%s: %s (field=%s, kinds=%s/%s)", e.Code, e.Message, e.Field, e.KindA, e.KindB)
	}
	if e.Field != "" && e.KindA != "" {
		return fmt.Sprintf("%s: %s (field=%s, kind=%s)", e.Code, e.Message, e.Field, e.KindA)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (field=%s)", e.Code, e.Message, e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsStructuralMismatch returns true if the error is a structural mismatch.
// Uses errors.As to handle wrapped errors.
func IsStructuralMismatch(err error) bool {
	var ce *CompareError
	return errors.As(err, &ce) && ce.Code == ErrCodeStructuralMismatch
}

// IsMissingField returns true if the error is a missing-field error.
func IsMissingField(err error) bool {
	var ce *CompareError
	return errors.As(err, &ce) && ce.Code == ErrCodeMissingField
}

// IsKindMismatch returns true if the error is a kind mismatch.
func IsKindMismatch(err error) bool {
	var ce *CompareError
	return errors.As(err, &ce) && ce.Code == ErrCodeKindMismatch
}

// IsUnsupportedKind returns true if the error is an unsupported-kind error.
func IsUnsupportedKind(err error) bool {
	var ce *CompareError
	return errors.As(err, &ce) && ce.Code == ErrCodeUnsupportedKind
}

// newStructuralMismatch creates a CompareError for a cardinality mismatch.
func newStructuralMismatch(lenA, lenB int) *CompareError {
	return &CompareError{
		Code:    ErrCodeStructuralMismatch,
		Message: fmt.Sprintf("field sets have different cardinality (%d vs %d)", lenA, lenB),
	}
}

// newMissingField creates a CompareError for a one-sided field.
func newMissingField(name string) *CompareError {
	return &CompareError{
		Code:    ErrCodeMissingField,
		Message: "field present on one side only",
		Field:   name,
	}
}

// newKindMismatch creates a CompareError for values of different kinds.
func newKindMismatch(name string, kindA, kindB value.Kind) *CompareError {
	return &CompareError{
		Code:    ErrCodeKindMismatch,
		Message: "field holds values of different kinds",
		Field:   name,
		KindA:   kindA,
		KindB:   kindB,
	}
}

// newUnsupportedKind creates a CompareError for a kind without an equality
// capability.
func newUnsupportedKind(name string, kind value.Kind) *CompareError {
	return &CompareError{
		Code:    ErrCodeUnsupportedKind,
		Message: "field kind has no registered equality capability",
		Field:   name,
		KindA:   kind,
	}
}
