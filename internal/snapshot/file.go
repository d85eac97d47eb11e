package snapshot

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a snapshot envelope from a YAML file.
func LoadFile(path string) (*Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snap Snapshot
	if err := yaml.Unmarshal(raw, &snap); err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", path, err)
	}

	// Reject envelopes whose kind and payload disagree before they reach
	// the differ or the store.
	if _, err := snap.Record(); err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", path, err)
	}
	return &snap, nil
}

// SaveFile writes a snapshot envelope to a YAML file.
func SaveFile(path string, snap *Snapshot) error {
	raw, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("save snapshot %s: %w", path, err)
	}
	return nil
}
