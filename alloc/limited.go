package alloc

import "github.com/joshuapare/containerkit/internal/assert"

// Limited wraps another Allocator with a budget of outstanding slots.
// Requests that would exceed the budget fail with ErrNoSpace, which
// makes out-of-memory paths deterministic to exercise. Returning slots
// replenishes the budget, so a failed request is terminal only for
// that call; later, smaller requests may still succeed.
type Limited[T any] struct {
	inner     Allocator[T]
	remaining int
}

// NewLimited returns an allocator that serves at most budget slots at
// a time from inner. A nil inner defaults to Heap.
func NewLimited[T any](inner Allocator[T], budget int) *Limited[T] {
	assert.That(budget >= 0, "NewLimited: negative budget %d", budget)
	if inner == nil {
		inner = Heap[T]{}
	}
	return &Limited[T]{inner: inner, remaining: budget}
}

// AllocateOne reserves one slot, or fails with ErrNoSpace when the
// budget is exhausted.
func (l *Limited[T]) AllocateOne() (*Slot[T], error) {
	if l.remaining < 1 {
		return nil, ErrNoSpace
	}
	s, err := l.inner.AllocateOne()
	if err != nil {
		return nil, err
	}
	l.remaining--
	return s, nil
}

// Allocate reserves n slots, or fails with ErrNoSpace when fewer than
// n remain in the budget. Allocate(0) returns nil, nil without
// consulting the budget or the wrapped allocator.
func (l *Limited[T]) Allocate(n int) ([]Slot[T], error) {
	assert.That(n >= 0, "Allocate: negative count %d", n)
	if n <= 0 {
		return nil, nil
	}
	if n > l.remaining {
		return nil, ErrNoSpace
	}
	s, err := l.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	l.remaining -= n
	return s, nil
}

// DeallocateOne returns one slot and replenishes the budget. Accepts
// nil as a no-op.
func (l *Limited[T]) DeallocateOne(s *Slot[T]) {
	if s == nil {
		return
	}
	l.remaining++
	l.inner.DeallocateOne(s)
}

// Deallocate returns slots and replenishes the budget. Accepts nil as
// a no-op.
func (l *Limited[T]) Deallocate(s []Slot[T]) {
	if s == nil {
		return
	}
	l.remaining += len(s)
	l.inner.Deallocate(s)
}

// Remaining reports how many slots the budget can still serve.
func (l *Limited[T]) Remaining() int { return l.remaining }

// Compile-time interface check
var _ Allocator[int] = (*Limited[int])(nil)
