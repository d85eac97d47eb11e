package value

import (
	"bytes"
	"time"
)

// Kind identifies the runtime category of a Value. Two values may only be
// compared for equality when their kinds match; the differ enforces this
// before delegating to Equal.
type Kind string

const (
	KindBool     Kind = "bool"
	KindInt      Kind = "int"
	KindFloat32  Kind = "float32"
	KindFloat64  Kind = "float64"
	KindString   Kind = "string"
	KindBytes    Kind = "bytes"
	KindTime     Kind = "time"
	KindSeq      Kind = "seq"
	KindOptional Kind = "optional"
)

// Value is a sealed interface representing the supported field value types.
// Only Bool, Int, Float32, Float64, String, Bytes, Time, Seq, Opt, and Ext
// implement this.
//
// Equal is diff-aware equality: it never fails, it only reports. Callers
// must establish that both sides share the same Kind before calling Equal;
// Equal on mismatched kinds reports false rather than panicking.
type Value interface {
	Kind() Kind
	Equal(other Value) bool
	value() // Sealed - only these types implement it
}

// Bool represents a boolean field value.
type Bool bool

func (Bool) value()     {}
func (Bool) Kind() Kind { return KindBool }

func (v Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && v == o
}

// Int represents a signed integer field value. Always int64 at rest; narrower
// integer fields widen on extraction.
type Int int64

func (Int) value()     {}
func (Int) Kind() Kind { return KindInt }

func (v Int) Equal(other Value) bool {
	o, ok := other.(Int)
	return ok && v == o
}

// Float32 represents a single-precision floating point field value.
// Equality follows IEEE754: NaN is not equal to NaN.
type Float32 float32

func (Float32) value()     {}
func (Float32) Kind() Kind { return KindFloat32 }

func (v Float32) Equal(other Value) bool {
	o, ok := other.(Float32)
	return ok && v == o
}

// Float64 represents a double-precision floating point field value.
// Equality follows IEEE754: NaN is not equal to NaN.
type Float64 float64

func (Float64) value()     {}
func (Float64) Kind() Kind { return KindFloat64 }

func (v Float64) Equal(other Value) bool {
	o, ok := other.(Float64)
	return ok && v == o
}

// String represents a UTF-8 text field value. Equality is exact byte
// equality; no normalization is applied at comparison time.
type String string

func (String) value()     {}
func (String) Kind() Kind { return KindString }

func (v String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && v == o
}

// Bytes represents an opaque byte-blob field value.
type Bytes []byte

func (Bytes) value()     {}
func (Bytes) Kind() Kind { return KindBytes }

func (v Bytes) Equal(other Value) bool {
	o, ok := other.(Bytes)
	return ok && bytes.Equal(v, o)
}

// Time represents a timestamp field value. Equality compares the instant at
// full stored precision (nanoseconds); location differences do not make two
// representations of the same instant unequal.
type Time struct {
	T time.Time
}

func (Time) value()     {}
func (Time) Kind() Kind { return KindTime }

func (v Time) Equal(other Value) bool {
	o, ok := other.(Time)
	return ok && v.T.Equal(o.T)
}

// NewTime wraps a time.Time as a field value.
func NewTime(t time.Time) Time {
	return Time{T: t}
}

// Seq represents a homogeneous ordered sequence of field values.
// Sequence equality is same length and pairwise-equal elements in order.
type Seq []Value

func (Seq) value()     {}
func (Seq) Kind() Kind { return KindSeq }

func (v Seq) Equal(other Value) bool {
	o, ok := other.(Seq)
	if !ok || len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i].Kind() != o[i].Kind() {
			return false
		}
		if !v[i].Equal(o[i]) {
			return false
		}
	}
	return true
}

// SeqOf builds a Seq from values.
func SeqOf(vals ...Value) Seq {
	return Seq(vals)
}

// Strings builds a Seq of String values. Convenience for the common
// string-list field shape.
func Strings(ss ...string) Seq {
	seq := make(Seq, len(ss))
	for i, s := range ss {
		seq[i] = String(s)
	}
	return seq
}

// Opt represents an optional field value: either absent, or present and
// wrapping any other Value. Absence is a first-class state, not an error.
//
// All Opt values share KindOptional regardless of the wrapped kind, so that
// an absent optional and a present optional of the same field pass the
// differ's kind check and compare as "different" rather than failing.
type Opt struct {
	wrapped Value
}

func (Opt) value()     {}
func (Opt) Kind() Kind { return KindOptional }

// Present reports whether the optional holds a value.
func (v Opt) Present() bool {
	return v.wrapped != nil
}

// Wrapped returns the wrapped value, or nil when absent.
func (v Opt) Wrapped() Value {
	return v.wrapped
}

// Equal composes with the wrapped value's equality: absent equals absent,
// absent never equals present, and present compares the wrapped values.
func (v Opt) Equal(other Value) bool {
	o, ok := other.(Opt)
	if !ok {
		return false
	}
	if v.Present() != o.Present() {
		return false
	}
	if !v.Present() {
		return true
	}
	if v.wrapped.Kind() != o.wrapped.Kind() {
		return false
	}
	return v.wrapped.Equal(o.wrapped)
}

// Some wraps a present value in an Opt.
func Some(v Value) Opt {
	return Opt{wrapped: v}
}

// None returns an absent Opt.
func None() Opt {
	return Opt{}
}

// OptString wraps a *string as an Opt: nil maps to absent.
func OptString(s *string) Opt {
	if s == nil {
		return None()
	}
	return Some(String(*s))
}
