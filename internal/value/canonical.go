package value

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"time"
	"unicode/utf16"

	"golang.org/x/text/unicode/norm"
)

// MarshalCanonical produces the canonical byte encoding of a field map, used
// for content-addressed snapshot identity. The encoding is deterministic:
// the same field map always yields the same bytes, regardless of map
// iteration order or string normalization form.
//
// Properties:
//  1. Field names sorted by UTF-16 code units (RFC 8785 ordering)
//  2. Strings NFC normalized, no HTML escaping
//  3. Floats encoded by their IEEE754 bit pattern, so NaN payloads and
//     signed zeroes hash distinctly and totally
//  4. Timestamps encoded as UTC RFC 3339 with nanoseconds
//
// Extension values have no canonical form and return an error; snapshot
// fingerprinting is defined over the built-in kinds only.
func MarshalCanonical(fields map[string]Value) ([]byte, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, compareKeysUTF16)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyBytes, err := marshalCanonicalString(k)
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", k, err)
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')

		valBytes, err := marshalCanonicalValue(fields[k])
		if err != nil {
			return nil, fmt.Errorf("marshal field %q: %w", k, err)
		}
		buf.Write(valBytes)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalCanonicalValue encodes one value as a ["kind", payload] pair so
// that values of different kinds can never collide byte-for-byte.
func marshalCanonicalValue(v Value) ([]byte, error) {
	var payload []byte
	var err error

	switch val := v.(type) {
	case nil:
		return nil, fmt.Errorf("nil value has no canonical form")
	case Bool:
		if val {
			payload = []byte("true")
		} else {
			payload = []byte("false")
		}
	case Int:
		payload = strconv.AppendInt(nil, int64(val), 10)
	case Float32:
		// Bit pattern, not decimal rendering: total over NaN and -0.
		payload, err = marshalCanonicalString(strconv.FormatUint(uint64(math.Float32bits(float32(val))), 16))
	case Float64:
		payload, err = marshalCanonicalString(strconv.FormatUint(math.Float64bits(float64(val)), 16))
	case String:
		payload, err = marshalCanonicalString(string(val))
	case Bytes:
		payload, err = marshalCanonicalString(base64.StdEncoding.EncodeToString(val))
	case Time:
		payload, err = marshalCanonicalString(val.T.UTC().Format(time.RFC3339Nano))
	case Seq:
		payload, err = marshalCanonicalSeq(val)
	case Opt:
		if !val.Present() {
			payload = []byte("null")
		} else {
			payload, err = marshalCanonicalValue(val.Wrapped())
		}
	case Ext:
		return nil, fmt.Errorf("extension kind %q has no canonical form", val.Name)
	default:
		return nil, fmt.Errorf("unknown value type: %T", v)
	}
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	kindBytes, err := marshalCanonicalString(string(v.Kind()))
	if err != nil {
		return nil, err
	}
	buf.Write(kindBytes)
	buf.WriteByte(',')
	buf.Write(payload)
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func marshalCanonicalSeq(seq Seq) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, elem := range seq {
		if i > 0 {
			buf.WriteByte(',')
		}
		elemBytes, err := marshalCanonicalValue(elem)
		if err != nil {
			return nil, fmt.Errorf("seq[%d]: %w", i, err)
		}
		buf.Write(elemBytes)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// marshalCanonicalString produces a canonical JSON string: NFC normalized
// at the serialization boundary, with HTML escaping disabled so that the
// encoding of < > & is stable across encoder versions.
func marshalCanonicalString(s string) ([]byte, error) {
	normalized := norm.NFC.String(s)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return nil, err
	}

	// json.Encoder adds a trailing newline, remove it
	result := buf.Bytes()
	if len(result) > 0 && result[len(result)-1] == '\n' {
		result = result[:len(result)-1]
	}
	return result, nil
}

// compareKeysUTF16 compares strings by UTF-16 code units, the RFC 8785
// canonical key order. Go's default string comparison is UTF-8 byte order,
// which differs for characters outside the BMP.
func compareKeysUTF16(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))

	minLen := len(a16)
	if len(b16) < minLen {
		minLen = len(b16)
	}
	for i := 0; i < minLen; i++ {
		if a16[i] != b16[i] {
			if a16[i] < b16[i] {
				return -1
			}
			return 1
		}
	}
	if len(a16) < len(b16) {
		return -1
	}
	if len(a16) > len(b16) {
		return 1
	}
	return 0
}
