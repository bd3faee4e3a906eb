package alloc

import "github.com/joshuapare/containerkit/internal/assert"

// Counting wraps another Allocator and tracks slot traffic: how many
// slots were handed out, how many came back, and how many calls
// reached the wrapped source. Its main job is leak detection in tests
// (Outstanding must return to zero), but it is an ordinary Allocator
// and can wrap any other.
//
// Counting is not safe for concurrent use; neither is anything else in
// this package.
type Counting[T any] struct {
	inner       Allocator[T]
	outstanding int
	allocated   int
	freed       int
	sourceCalls int
}

// NewCounting returns a Counting allocator wrapping inner. A nil inner
// defaults to Heap.
func NewCounting[T any](inner Allocator[T]) *Counting[T] {
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Counting[T]{inner: inner}
}

// AllocateOne reserves one slot from the wrapped allocator.
func (c *Counting[T]) AllocateOne() (*Slot[T], error) {
	c.sourceCalls++
	s, err := c.inner.AllocateOne()
	if err != nil {
		return nil, err
	}
	c.outstanding++
	c.allocated++
	return s, nil
}

// Allocate reserves n slots from the wrapped allocator. Allocate(0)
// returns nil, nil without consulting the wrapped allocator.
func (c *Counting[T]) Allocate(n int) ([]Slot[T], error) {
	assert.That(n >= 0, "Allocate: negative count %d", n)
	if n <= 0 {
		return nil, nil
	}
	c.sourceCalls++
	s, err := c.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	c.outstanding += n
	c.allocated += n
	return s, nil
}

// DeallocateOne returns one slot to the wrapped allocator. Accepts
// nil as a no-op.
func (c *Counting[T]) DeallocateOne(s *Slot[T]) {
	if s == nil {
		return
	}
	c.outstanding--
	c.freed++
	assert.That(c.outstanding >= 0, "DeallocateOne: more slots freed than allocated")
	c.inner.DeallocateOne(s)
}

// Deallocate returns slots to the wrapped allocator. Accepts nil as a
// no-op.
func (c *Counting[T]) Deallocate(s []Slot[T]) {
	if s == nil {
		return
	}
	c.outstanding -= len(s)
	c.freed += len(s)
	assert.That(c.outstanding >= 0, "Deallocate: more slots freed than allocated")
	c.inner.Deallocate(s)
}

// Outstanding reports slots handed out and not yet returned. Zero
// means no leaks.
func (c *Counting[T]) Outstanding() int { return c.outstanding }

// Allocated reports the total number of slots handed out.
func (c *Counting[T]) Allocated() int { return c.allocated }

// Freed reports the total number of slots returned.
func (c *Counting[T]) Freed() int { return c.freed }

// SourceCalls reports how many calls reached the wrapped allocator.
// Allocate(0) and nil deallocations never reach it.
func (c *Counting[T]) SourceCalls() int { return c.sourceCalls }

// Compile-time interface check
var _ Allocator[int] = (*Counting[int])(nil)
