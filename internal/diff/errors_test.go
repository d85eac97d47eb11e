package diff

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/snapdiff/internal/value"
)

func TestCompareErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *CompareError
		want string
	}{
		{
			"structural mismatch",
			newStructuralMismatch(3, 5),
			"STRUCTURAL_MISMATCH: field sets have different cardinality (3 vs 5)",
		},
		{
			"missing field",
			newMissingField("cpus"),
			"MISSING_FIELD: field present on one side only (field=cpus)",
		},
		{
			"kind mismatch",
			newKindMismatch("cpus", value.KindInt, value.KindString),
			"TYPE_MISMATCH: field holds values of different kinds (field=cpus, kinds=int/string)",
		},
		{
			"unsupported kind",
			newUnsupportedKind("ver", "ext:semver"),
			"UNSUPPORTED_TYPE: field kind has no registered equality capability (field=ver, kind=ext:semver)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestPredicatesMatchWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("comparing snapshots: %w", newMissingField("cpus"))

	assert.True(t, IsMissingField(wrapped))
	assert.False(t, IsStructuralMismatch(wrapped))
	assert.False(t, IsKindMismatch(wrapped))
	assert.False(t, IsUnsupportedKind(wrapped))
}

func TestPredicatesRejectForeignErrors(t *testing.T) {
	err := fmt.Errorf("not a compare error")

	assert.False(t, IsMissingField(err))
	assert.False(t, IsStructuralMismatch(err))
	assert.False(t, IsKindMismatch(err))
	assert.False(t, IsUnsupportedKind(err))
}
