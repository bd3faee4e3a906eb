package alloc

import "github.com/joshuapare/containerkit/internal/assert"

// Heap allocates slots from the Go runtime allocator. It is stateless:
// every Heap value is interchangeable with every other, and the zero
// value is ready to use.
//
// Deallocation is a release of ownership, not a release of memory; the
// garbage collector reclaims storage once no references remain.
type Heap[T any] struct{}

// NewHeap returns a heap-backed allocator for T.
func NewHeap[T any]() Heap[T] { return Heap[T]{} }

// AllocateOne reserves storage for exactly one T.
func (Heap[T]) AllocateOne() (*Slot[T], error) {
	return new(Slot[T]), nil
}

// Allocate reserves storage for n values of T. Allocate(0) returns
// nil, nil without allocating.
func (Heap[T]) Allocate(n int) ([]Slot[T], error) {
	assert.That(n >= 0, "Allocate: negative count %d", n)
	if n <= 0 {
		return nil, nil
	}
	return make([]Slot[T], n), nil
}

// DeallocateOne releases the slot. Accepts nil.
func (Heap[T]) DeallocateOne(s *Slot[T]) {}

// Deallocate releases the slots. Accepts nil.
func (Heap[T]) Deallocate(s []Slot[T]) {}

// Compile-time interface check
var _ Allocator[int] = Heap[int]{}
