package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/snapdiff/internal/diff"
	"github.com/roach88/snapdiff/internal/value"
)

// Snapshot kinds. The kind selects which descriptor the envelope carries.
const (
	KindHost   = "host"
	KindBundle = "bundle"
)

// Snapshot is the persistence envelope around one captured descriptor.
// Exactly one of Host or Bundle is set, matching Kind.
type Snapshot struct {
	ID         string            `yaml:"id" json:"id"`
	Name       string            `yaml:"name" json:"name"`
	Kind       string            `yaml:"kind" json:"kind"`
	CapturedAt time.Time         `yaml:"captured_at" json:"captured_at"`
	Host       *HostDescriptor   `yaml:"host,omitempty" json:"host,omitempty"`
	Bundle     *BundleDescriptor `yaml:"bundle,omitempty" json:"bundle,omitempty"`
}

// NewID generates a time-ordered snapshot ID.
// Uses github.com/google/uuid for RFC 4122 compliant UUIDs; v7 so that
// lexicographic ID order follows capture order.
func NewID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Record returns the descriptor the envelope carries, as a diffable record.
func (s *Snapshot) Record() (diff.Record, error) {
	switch s.Kind {
	case KindHost:
		if s.Host == nil {
			return nil, fmt.Errorf("snapshot %s: kind %q without host descriptor", s.ID, s.Kind)
		}
		return s.Host, nil
	case KindBundle:
		if s.Bundle == nil {
			return nil, fmt.Errorf("snapshot %s: kind %q without bundle descriptor", s.ID, s.Kind)
		}
		return s.Bundle, nil
	default:
		return nil, fmt.Errorf("snapshot %s: unknown kind %q", s.ID, s.Kind)
	}
}

// Fingerprint computes the content identity of a record: SHA-256 over the
// canonical encoding of its field map. Two records with equal field values
// fingerprint identically, so the store can cheaply detect a snapshot that
// changed nothing. Caveat: floats are fingerprinted by bit pattern, so two
// NaN fields hash identically even though Compare reports them as differing
// (IEEE754 NaN != NaN).
func Fingerprint(rec diff.Record) (string, error) {
	canonical, err := value.MarshalCanonical(rec.DiffFields())
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}
