package keys

import "fmt"

// Keys is the interface implemented by keyed enumeration types.
// Key returns the canonical string of the receiver and IsValid reports
// whether the receiver is one of the declared variants.
type Keys interface {
	Key() string
	IsValid() bool
}

// Pair binds one enumeration value to its canonical string.
type Pair[T comparable] struct {
	Key   string
	Value T
}

// Set is an immutable registry of (canonical string, value) pairs.
//
// A Set performs no validation: duplicate keys or values are tolerated and
// the first listed pair wins on lookup. Rejecting duplicates is the job of
// definition-time validation (internal/schema), not of the registry.
// All methods are read-only and safe for concurrent use.
type Set[T comparable] struct {
	pairs []Pair[T]
}

// NewSet builds a Set from the given pairs. Declaration order is preserved
// and significant: Keys iterates in it, and lookups resolve to the first
// matching pair.
func NewSet[T comparable](pairs ...Pair[T]) Set[T] {
	res := make([]Pair[T], len(pairs))
	copy(res, pairs)

	return Set[T]{pairs: res}
}

// FromKey returns the value bound to the given canonical string.
// An unrecognized string yields the zero value and false; it is never an
// error, callers decide how to react.
func (s Set[T]) FromKey(key string) (T, bool) {
	for _, p := range s.pairs {
		if p.Key == key {
			return p.Value, true
		}
	}

	var zero T

	return zero, false
}

// KeyOf returns the canonical string bound to v.
//
// Every validly-constructed value is present in its registry, so a miss here
// is an internal-consistency violation (a value and its registry have been
// desynchronized) and panics. It is not a recoverable condition.
func (s Set[T]) KeyOf(v T) string {
	for _, p := range s.pairs {
		if p.Value == v {
			return p.Key
		}
	}

	panic(fmt.Sprintf("keys: value %v is not registered in its key set", v))
}

// Keys returns all canonical strings in declaration order.
// The returned slice is a copy; callers may modify it freely.
func (s Set[T]) Keys() []string {
	res := make([]string, len(s.pairs))
	for i, p := range s.pairs {
		res[i] = p.Key
	}

	return res
}

// Values returns all registered values in declaration order.
func (s Set[T]) Values() []T {
	res := make([]T, len(s.pairs))
	for i, p := range s.pairs {
		res[i] = p.Value
	}

	return res
}

// Len returns the number of registered pairs.
func (s Set[T]) Len() int {
	return len(s.pairs)
}
