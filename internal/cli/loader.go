package cli

import (
	_ "embed"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/snapdiff/internal/snapshot"
)

//go:embed schema.cue
var schemaCUE string

// LoadError represents an error that occurred during snapshot file loading.
type LoadError struct {
	Code    string
	Path    string
	Message string
}

func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// LoadSnapshotFile reads a YAML snapshot file, validates it against the
// embedded CUE schema, and decodes the envelope.
func LoadSnapshotFile(path string) (*snapshot.Snapshot, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Path: path, Message: "snapshot file not found"}
	}
	if err != nil {
		return nil, &LoadError{Code: ErrCodeGeneric, Path: path, Message: err.Error()}
	}

	if err := ValidateSnapshotYAML(raw); err != nil {
		return nil, &LoadError{Code: ErrCodeBadInput, Path: path, Message: err.Error()}
	}

	snap := &snapshot.Snapshot{}
	if err := yaml.Unmarshal(raw, snap); err != nil {
		return nil, &LoadError{Code: ErrCodeBadInput, Path: path, Message: err.Error()}
	}
	if _, err := snap.Record(); err != nil {
		return nil, &LoadError{Code: ErrCodeBadInput, Path: path, Message: err.Error()}
	}
	return snap, nil
}

// ValidateSnapshotYAML checks a raw YAML document against the snapshot
// schema without decoding it into Go types.
func ValidateSnapshotYAML(raw []byte) error {
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}
	if doc == nil {
		return fmt.Errorf("empty snapshot document")
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#Snapshot"))
	if !def.Exists() {
		return fmt.Errorf("schema has no #Snapshot definition")
	}

	data := ctx.Encode(normalizeScalars(doc))
	if err := data.Err(); err != nil {
		return fmt.Errorf("encoding document: %w", err)
	}

	unified := def.Unify(data)
	if err := unified.Validate(cue.Concrete(true), cue.Final()); err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	return nil
}

// normalizeScalars rewrites YAML-decoded scalars into the shapes the schema
// declares: timestamps become RFC 3339 strings and binary blobs become
// base64 strings. yaml.v3 eagerly decodes both into richer Go types that
// CUE would otherwise reject.
func normalizeScalars(v any) any {
	switch val := v.(type) {
	case time.Time:
		return val.UTC().Format(time.RFC3339Nano)
	case []byte:
		return base64.StdEncoding.EncodeToString(val)
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, elem := range val {
			out[k] = normalizeScalars(elem)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, elem := range val {
			out[i] = normalizeScalars(elem)
		}
		return out
	default:
		return v
	}
}
