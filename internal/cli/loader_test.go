package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSnapshotYAML(t *testing.T) {
	valid := `
id: abc
name: host
kind: host
captured_at: "2026-08-30T12:00:00Z"
host:
  hostname: alpha
  os: linux
  arch: amd64
  cpus: 8
  runtime: go1.25.0
  env_digest: !!binary aGFzaA==
  containerized: false
`
	assert.NoError(t, ValidateSnapshotYAML([]byte(valid)))
}

func TestValidateSnapshotYAMLNormalizesTimestamps(t *testing.T) {
	// Unquoted RFC 3339 scalars decode as time.Time; the schema declares
	// captured_at as string, so the loader must normalize before encoding.
	doc := `
id: abc
name: host
kind: host
captured_at: 2026-08-30T12:00:00Z
host:
  hostname: alpha
  os: linux
  arch: amd64
  cpus: 8
  runtime: go1.25.0
  env_digest: !!binary aGFzaA==
  containerized: false
`
	assert.NoError(t, ValidateSnapshotYAML([]byte(doc)))
}

func TestValidateSnapshotYAMLRejections(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty document", ""},
		{"not yaml", "{broken: ["},
		{"empty id", "id: \"\"\nname: n\nkind: host\ncaptured_at: \"x\"\n"},
		{"unknown kind", "id: a\nname: n\nkind: cluster\ncaptured_at: \"x\"\n"},
		{"missing name", "id: a\nkind: host\ncaptured_at: \"x\"\n"},
		{
			"negative cpus",
			`
id: abc
name: host
kind: host
captured_at: "2026-08-30T12:00:00Z"
host:
  hostname: alpha
  os: linux
  arch: amd64
  cpus: -1
  runtime: go1.25.0
  env_digest: !!binary aGFzaA==
  containerized: false
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, ValidateSnapshotYAML([]byte(tt.doc)))
		})
	}
}

func TestLoadSnapshotFileErrorsCarryPath(t *testing.T) {
	_, err := LoadSnapshotFile("testdata/nope.yaml")
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
	assert.Equal(t, "testdata/nope.yaml", loadErr.Path)
}

func TestLoadSnapshotFileBadInput(t *testing.T) {
	_, err := LoadSnapshotFile("testdata/invalid.yaml")
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeBadInput, loadErr.Code)
}
