package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsWellFormedFiles(t *testing.T) {
	out, err := execute(t, "validate", "testdata/host_a.yaml", "testdata/bundle.yaml")

	require.NoError(t, err)
	assert.Contains(t, out, "ok: testdata/host_a.yaml")
	assert.Contains(t, out, "ok: testdata/bundle.yaml")
}

func TestValidateRejectsInvalidFile(t *testing.T) {
	out, err := execute(t, "validate", "testdata/invalid.yaml")

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "invalid: testdata/invalid.yaml")
}

func TestValidateMixedFiles(t *testing.T) {
	out, err := execute(t, "validate", "testdata/host_a.yaml", "testdata/invalid.yaml")

	require.Error(t, err)
	assert.Contains(t, out, "ok: testdata/host_a.yaml")
	assert.Contains(t, out, "invalid: testdata/invalid.yaml")
}

func TestValidateMissingFile(t *testing.T) {
	_, err := execute(t, "validate", "testdata/nope.yaml")

	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}
