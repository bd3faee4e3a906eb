package alloc

// Allocator reserves and releases slot storage for values of type T.
// Reserving storage and constructing values in it are independent
// operations: an Allocator hands out empty slots, and the Construct
// and Destroy functions manage the lifetimes of the values inside.
//
// Implementations:
//   - Heap: delegates to the Go runtime allocator
//   - Counting: instrumentation wrapper tracking outstanding slots
//   - Limited: budget wrapper producing deterministic ErrNoSpace
//
// Contract, honored by every implementation:
//   - Allocate(0) returns nil, nil without touching the underlying
//     allocation source.
//   - Deallocate(nil) and DeallocateOne(nil) are no-ops, so cleanup
//     paths may deallocate unconditionally.
//   - ErrNoSpace is the only reportable failure.
//
// Deallocation releases storage only; it does not destroy live values.
// Callers destroy before they deallocate.
type Allocator[T any] interface {
	// AllocateOne reserves storage for exactly one T.
	AllocateOne() (*Slot[T], error)

	// Allocate reserves storage for n values of T. The returned slots
	// are empty.
	Allocate(n int) ([]Slot[T], error)

	// DeallocateOne releases storage obtained from AllocateOne.
	DeallocateOne(s *Slot[T])

	// Deallocate releases storage obtained from Allocate. The slice
	// carries its own length, so no separate count is needed.
	Deallocate(s []Slot[T])
}
