package alloc

import (
	"github.com/joshuapare/containerkit/internal/assert"
	"github.com/joshuapare/containerkit/util"
)

// Disposable is the destructor hook. When Destroy tears down a value
// whose pointer implements Disposable, Dispose runs before the slot is
// cleared. Values without the method are simply cleared.
type Disposable interface {
	Dispose()
}

// Slot is storage for exactly one T. A slot is either empty or holds
// one live value; the Construct and Destroy functions are the only
// sanctioned transitions between the two states. Calling them out of
// order is a precondition violation caught by debug assertions, not a
// runtime error.
//
// The zero Slot is empty and ready for Construct.
type Slot[T any] struct {
	val  T
	live bool
}

// Live reports whether the slot currently holds a value.
func (s *Slot[T]) Live() bool { return s.live }

// Get returns a pointer to the live value. The slot must be live.
func (s *Slot[T]) Get() *T {
	assert.That(s.live, "Get: slot holds no live value")
	return &s.val
}

// Take moves the value out of the slot, leaving it empty. The slot
// must be live. Ownership transfers to the caller; Dispose is not run.
func (s *Slot[T]) Take() T {
	assert.That(s.live, "Take: slot holds no live value")
	s.live = false
	return util.Move(&s.val)
}

// Construct default-constructs a value in s (the zero value of T).
// The slot must be empty.
func Construct[T any](s *Slot[T]) {
	assert.That(!s.live, "Construct: slot already holds a live value")
	var zero T
	s.val = zero
	s.live = true
}

// ConstructValue copy-constructs v into s. The slot must be empty.
func ConstructValue[T any](s *Slot[T], v T) {
	assert.That(!s.live, "ConstructValue: slot already holds a live value")
	s.val = v
	s.live = true
}

// ConstructMove move-constructs into s from src, leaving *src as the
// zero value of T. The slot must be empty.
func ConstructMove[T any](s *Slot[T], src *T) {
	assert.That(!s.live, "ConstructMove: slot already holds a live value")
	s.val = util.Move(src)
	s.live = true
}

// ConstructWith builds the value with the supplied constructor
// function. The closure stands in for a forwarded argument list: each
// captured argument is copied or moved exactly as the caller chose.
// The slot must be empty.
func ConstructWith[T any](s *Slot[T], build func() T) {
	assert.That(!s.live, "ConstructWith: slot already holds a live value")
	s.val = build()
	s.live = true
}

// Destroy ends the lifetime of the value in s: runs its Dispose hook
// if it has one, then clears the slot. The storage itself remains
// valid for a later Construct. The slot must be live.
func Destroy[T any](s *Slot[T]) {
	assert.That(s.live, "Destroy: slot holds no live value")
	if d, ok := any(&s.val).(Disposable); ok {
		d.Dispose()
	}
	var zero T
	s.val = zero
	s.live = false
}

// DestroyRange destroys every slot in slots, in forward order. Every
// slot must be live.
func DestroyRange[T any](slots []Slot[T]) {
	for i := range slots {
		Destroy(&slots[i])
	}
}
