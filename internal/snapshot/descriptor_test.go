package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/snapdiff/internal/diff"
)

func testHost() *HostDescriptor {
	bootID := "7f1c2d3e-aaaa-bbbb-cccc-000000000001"
	return &HostDescriptor{
		Hostname:      "alpha",
		OS:            "linux",
		Arch:          "amd64",
		CPUs:          8,
		Runtime:       "go1.25.0",
		EnvDigest:     []byte{0x01, 0x02},
		Containerized: false,
		BootID:        &bootID,
		Tags:          []string{"prod"},
	}
}

func testBundle() *BundleDescriptor {
	channel := "stable"
	return &BundleDescriptor{
		Name:      "agent",
		Version:   "1.4.2",
		BuiltAt:   time.Date(2026, 8, 1, 9, 30, 0, 0, time.UTC),
		Digest:    []byte{0xAB, 0xCD},
		Enabled:   true,
		SizeBytes: 1 << 20,
		Priority:  0.5,
		Deps:      []string{"libfoo", "libbar"},
		Channel:   &channel,
	}
}

func TestHostDescriptorFieldSetStable(t *testing.T) {
	fields := testHost().DiffFields()

	assert.Equal(t, []string{
		"arch", "boot_id", "containerized", "cpus", "env_digest",
		"hostname", "os", "runtime", "tags",
	}, fields.SortedNames())
}

func TestHostDescriptorSelfCompare(t *testing.T) {
	changed, err := diff.Compare(testHost(), testHost())
	require.NoError(t, err)
	assert.Empty(t, changed)
}

func TestHostDescriptorDrift(t *testing.T) {
	a := testHost()
	b := testHost()
	b.Hostname = "beta"
	b.CPUs = 16
	b.Tags = []string{"prod", "canary"}

	changed, err := diff.Compare(a, b)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"hostname", "cpus", "tags"}, changed)
}

func TestHostDescriptorBootIDOptional(t *testing.T) {
	a := testHost()
	a.BootID = nil
	b := testHost()
	b.BootID = nil

	changed, err := diff.Compare(a, b)
	require.NoError(t, err)
	assert.Empty(t, changed)

	// Reboot: boot id goes from absent to present.
	rebooted := testHost()
	changed, err = diff.Compare(a, rebooted)
	require.NoError(t, err)
	assert.Equal(t, []string{"boot_id"}, changed)
}

func TestBundleDescriptorFieldSetStable(t *testing.T) {
	fields := testBundle().DiffFields()

	assert.Equal(t, []string{
		"built_at", "channel", "deps", "digest", "enabled",
		"name", "priority", "size_bytes", "version",
	}, fields.SortedNames())
}

func TestBundleDescriptorDrift(t *testing.T) {
	a := testBundle()
	b := testBundle()
	b.Version = "1.5.0"
	b.BuiltAt = b.BuiltAt.Add(48 * time.Hour)
	b.Digest = []byte{0xEF, 0x01}
	b.Channel = nil

	changed, err := diff.Compare(a, b)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"version", "built_at", "digest", "channel"}, changed)
}

func TestBundleDescriptorPriorityDrift(t *testing.T) {
	a := testBundle()
	b := testBundle()
	b.Priority = 0.75

	changed, err := diff.Compare(a, b)
	require.NoError(t, err)
	assert.Equal(t, []string{"priority"}, changed)
}
