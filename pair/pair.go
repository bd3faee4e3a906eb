package pair

import "github.com/joshuapare/containerkit/util"

// Pair is an ordered two-slot value: one First of type A and one
// Second of type B. Both slots are always populated together; a Pair
// returned by any factory in this package is never half-made.
//
// A Pair owns its elements and nothing else. It occupies whatever
// storage its owner gives it (a variable, a container slot); it never
// heap-allocates on its own behalf.
type Pair[A, B any] struct {
	First  A
	Second B
}

// New returns a default-constructed pair: both slots hold their zero
// value. Every Go type is zero-constructible, so New is always
// available.
func New[A, B any]() Pair[A, B] {
	return Pair[A, B]{}
}

// Make returns a pair built from two element values.
func Make[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// MakeWith builds each slot with its own constructor function. The
// closures stand in for forwarded constructor arguments: each captured
// argument is copied or moved exactly as the caller chose.
func MakeWith[A, B any](first func() A, second func() B) Pair[A, B] {
	return Pair[A, B]{First: first(), Second: second()}
}

// Assign copy-assigns src into p, element-wise, First then Second.
// Self-assignment is a no-op.
func (p *Pair[A, B]) Assign(src *Pair[A, B]) {
	if p == src {
		return
	}
	p.First = src.First
	p.Second = src.Second
}

// AssignMove move-assigns src into p, element-wise, First then Second,
// leaving src's elements as zero values. Self-assignment is a no-op.
func (p *Pair[A, B]) AssignMove(src *Pair[A, B]) {
	if p == src {
		return
	}
	p.First = util.Move(&src.First)
	p.Second = util.Move(&src.Second)
}

// Swap exchanges the elements of p and other. Self-swap is a no-op.
func (p *Pair[A, B]) Swap(other *Pair[A, B]) {
	if p == other {
		return
	}
	util.Swap(&p.First, &other.First)
	util.Swap(&p.Second, &other.Second)
}

// Dispose destroys both elements, First then Second: each element
// whose pointer implements the Dispose hook is disposed. Destroying a
// slot that holds a Pair therefore tears down both members.
func (p *Pair[A, B]) Dispose() {
	if d, ok := any(&p.First).(disposable); ok {
		d.Dispose()
	}
	if d, ok := any(&p.Second).(disposable); ok {
		d.Dispose()
	}
}

// Elements returns both elements untyped. This method is the canonical
// pair contract the traits package keys on; only the Pair type in this
// package is expected to implement it.
func (p Pair[A, B]) Elements() (first, second any) {
	return p.First, p.Second
}

// disposable mirrors alloc.Disposable structurally; redeclaring it
// here keeps this leaf package free of an allocator import.
type disposable interface {
	Dispose()
}
