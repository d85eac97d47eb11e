package value

import (
	"fmt"
	"sync"
)

// Ext represents an extension leaf value: a caller-defined type identified by
// a registered name. Equality for an extension kind is supplied once via
// RegisterEquality and is treated as immutable for the process's lifetime.
//
// Two Ext values of different names never share a Kind, so the differ
// reports a type mismatch rather than consulting the registry.
type Ext struct {
	Name    string
	Payload any
}

func (Ext) value() {}

func (v Ext) Kind() Kind {
	return Kind("ext:" + v.Name)
}

func (v Ext) Equal(other Value) bool {
	o, ok := other.(Ext)
	if !ok || v.Name != o.Name {
		return false
	}
	fn := lookupEquality(v.Name)
	if fn == nil {
		// Unregistered kinds are screened out by Supported before the
		// differ ever calls Equal.
		return false
	}
	return fn(v.Payload, o.Payload)
}

// EqualityFunc compares two extension payloads of the same registered kind.
// It must be pure and must never panic; payloads are whatever the caller
// stored in Ext.
type EqualityFunc func(a, b any) bool

var (
	extMu       sync.RWMutex
	extRegistry = map[string]EqualityFunc{}
)

// RegisterEquality registers the equality capability for an extension kind.
// Registration happens at process startup (typically from init); once
// registered, an entry is never replaced or removed.
//
// Panics if the name is empty, fn is nil, or the name is already registered.
// Duplicate registration indicates two packages claiming the same kind name,
// which cannot be resolved at runtime.
func RegisterEquality(name string, fn EqualityFunc) {
	if name == "" {
		panic("value: RegisterEquality with empty name")
	}
	if fn == nil {
		panic(fmt.Sprintf("value: RegisterEquality(%q) with nil func", name))
	}
	extMu.Lock()
	defer extMu.Unlock()
	if _, exists := extRegistry[name]; exists {
		panic(fmt.Sprintf("value: equality for %q registered twice", name))
	}
	extRegistry[name] = fn
}

func lookupEquality(name string) EqualityFunc {
	extMu.RLock()
	defer extMu.RUnlock()
	return extRegistry[name]
}

// Supported reports whether a value participates in the equality capability.
// Built-in kinds always do. An Ext participates only once its kind name has
// been registered. A Seq participates when every element does, and a present
// Opt participates when its wrapped value does (an absent Opt is always
// supported - absence needs no equality).
func Supported(v Value) bool {
	switch val := v.(type) {
	case nil:
		return false
	case Ext:
		return lookupEquality(val.Name) != nil
	case Seq:
		for _, elem := range val {
			if !Supported(elem) {
				return false
			}
		}
		return true
	case Opt:
		if !val.Present() {
			return true
		}
		return Supported(val.Wrapped())
	default:
		return true
	}
}
