package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with the given args and returns captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func TestDiffFilesDriftText(t *testing.T) {
	out, err := execute(t, "diff", "testdata/host_a.yaml", "testdata/host_b.yaml")

	assert.Equal(t, ExitFailure, GetExitCode(err))
	newGoldie(t).Assert(t, "diff_drift_text", []byte(out))
}

func TestDiffFilesDriftJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "diff", "testdata/host_a.yaml", "testdata/host_b.yaml")

	assert.Equal(t, ExitFailure, GetExitCode(err))
	newGoldie(t).Assert(t, "diff_drift_json", []byte(out))
}

func TestDiffFilesNoDrift(t *testing.T) {
	out, err := execute(t, "diff", "testdata/host_a.yaml", "testdata/host_a.yaml")

	require.NoError(t, err)
	newGoldie(t).Assert(t, "diff_nodrift_text", []byte(out))
}

func TestDiffRejectsMixedKinds(t *testing.T) {
	_, err := execute(t, "diff", "testdata/host_a.yaml", "testdata/bundle.yaml")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestDiffMissingFile(t *testing.T) {
	_, err := execute(t, "diff", "testdata/host_a.yaml", "testdata/nope.yaml")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestDiffRejectsInvalidFile(t *testing.T) {
	_, err := execute(t, "diff", "testdata/host_a.yaml", "testdata/invalid.yaml")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestDiffRejectsArgAndNameMix(t *testing.T) {
	// Files and --name together are ambiguous; rejected before any
	// file or database is touched.
	_, err := execute(t, "diff", "testdata/host_a.yaml", "testdata/host_b.yaml", "--name", "host")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestDiffStoredSeries(t *testing.T) {
	dbPath := seedHistory(t)

	out, err := execute(t, "--format", "json", "diff", "--db", dbPath, "--name", "host")

	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, `"drift":true`)
	assert.Contains(t, out, `"cpus"`)
}

func TestDiffStoredSeriesTooShort(t *testing.T) {
	dbPath := seedSingleSnapshot(t)

	_, err := execute(t, "diff", "--db", dbPath, "--name", "host")

	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
