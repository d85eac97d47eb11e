package snapshot

import (
	"time"

	"github.com/roach88/snapdiff/internal/diff"
	"github.com/roach88/snapdiff/internal/value"
)

// HostDescriptor describes the machine a snapshot was taken on.
//
// Field names in DiffFields match the YAML keys, so a reported drift name
// can be looked up directly in the snapshot file.
type HostDescriptor struct {
	Hostname      string   `yaml:"hostname" json:"hostname"`
	OS            string   `yaml:"os" json:"os"`
	Arch          string   `yaml:"arch" json:"arch"`
	CPUs          int64    `yaml:"cpus" json:"cpus"`
	Runtime       string   `yaml:"runtime" json:"runtime"`
	EnvDigest     []byte   `yaml:"env_digest" json:"env_digest"`
	Containerized bool     `yaml:"containerized" json:"containerized"`
	BootID        *string  `yaml:"boot_id,omitempty" json:"boot_id,omitempty"`
	Tags          []string `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// DiffFields enumerates every declared field. The set is fixed: all
// instances of HostDescriptor yield the same nine names.
func (d *HostDescriptor) DiffFields() diff.FieldMap {
	return diff.FieldMap{
		"hostname":      value.String(d.Hostname),
		"os":            value.String(d.OS),
		"arch":          value.String(d.Arch),
		"cpus":          value.Int(d.CPUs),
		"runtime":       value.String(d.Runtime),
		"env_digest":    value.Bytes(d.EnvDigest),
		"containerized": value.Bool(d.Containerized),
		"boot_id":       value.OptString(d.BootID),
		"tags":          value.Strings(d.Tags...),
	}
}

// BundleDescriptor describes one installed bundle: name, version, build
// metadata, and activation state.
type BundleDescriptor struct {
	Name      string    `yaml:"name" json:"name"`
	Version   string    `yaml:"version" json:"version"`
	BuiltAt   time.Time `yaml:"built_at" json:"built_at"`
	Digest    []byte    `yaml:"digest" json:"digest"`
	Enabled   bool      `yaml:"enabled" json:"enabled"`
	SizeBytes int64     `yaml:"size_bytes" json:"size_bytes"`
	Priority  float64   `yaml:"priority" json:"priority"`
	Deps      []string  `yaml:"deps,omitempty" json:"deps,omitempty"`
	Channel   *string   `yaml:"channel,omitempty" json:"channel,omitempty"`
}

// DiffFields enumerates every declared field.
func (d *BundleDescriptor) DiffFields() diff.FieldMap {
	return diff.FieldMap{
		"name":       value.String(d.Name),
		"version":    value.String(d.Version),
		"built_at":   value.NewTime(d.BuiltAt),
		"digest":     value.Bytes(d.Digest),
		"enabled":    value.Bool(d.Enabled),
		"size_bytes": value.Int(d.SizeBytes),
		"priority":   value.Float64(d.Priority),
		"deps":       value.Strings(d.Deps...),
		"channel":    value.OptString(d.Channel),
	}
}
