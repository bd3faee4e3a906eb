// Package traits answers shape questions about types: "is T the
// canonical pair type?", "does T carry a destructor?". The answers
// depend only on the type, never on a value, so containers can branch
// once per instantiation to special-case capable element types (map
// nodes detecting pair-shaped elements, teardown paths detecting
// disposable ones).
//
// Each predicate keys on a capability contract a type either carries
// or does not; new predicates follow the same pattern without changing
// existing call sites.
package traits

import "reflect"

// PairLike is the canonical pair contract: implemented by pair.Pair
// and nothing else. A type that merely has First and Second fields
// does not satisfy it.
type PairLike interface {
	Elements() (first, second any)
}

// IsPair reports whether T is an instantiation of the canonical pair
// type. Pointers to pairs are not pairs.
func IsPair[T any]() bool {
	var zero T
	if _, ok := any(zero).(PairLike); !ok {
		return false
	}
	return reflect.TypeFor[T]().Kind() == reflect.Struct
}

// IsPairValue is IsPair for a value whose static type is unknown.
func IsPairValue(v any) bool {
	if _, ok := v.(PairLike); !ok {
		return false
	}
	return reflect.TypeOf(v).Kind() == reflect.Struct
}

// IsDisposable reports whether values of type T carry a destructor,
// i.e. whether *T implements the Dispose hook the allocator runs on
// Destroy.
func IsDisposable[T any]() bool {
	_, ok := any((*T)(nil)).(interface{ Dispose() })
	return ok
}

// Comparable reports whether T supports Go's == operator. This is the
// one capability the method set cannot express, so it is answered by
// the runtime's type metadata instead.
func Comparable[T any]() bool {
	return reflect.TypeFor[T]().Comparable()
}
