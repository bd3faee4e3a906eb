// Package alloc separates "get storage" from "build a value" so that
// containers can manage capacity and lifetimes independently.
//
// # Overview
//
// The package splits memory management into four independent operation
// families:
//
//   - Allocate / AllocateOne: reserve empty slot storage
//   - Construct / ConstructValue / ConstructMove / ConstructWith:
//     begin a value's lifetime inside a slot
//   - Destroy / DestroyRange: end a value's lifetime, keep the storage
//   - Deallocate / DeallocateOne: release the storage
//
// A container that wants spare capacity allocates more slots than it
// constructs; shrinking destroys values without releasing storage.
//
// # Slots
//
// Slot[T] is owned-but-maybe-empty storage for one T. It is either
// empty or live, and the construct/destroy functions are the only
// transitions between the two states. Misuse (constructing into a live
// slot, destroying an empty one) trips a debug assertion; builds with
// the release tag compile the checks out.
//
// # Allocators
//
// Allocation strategy is an injected Allocator[T] value:
//
//   - Heap: the Go runtime allocator; the zero value works
//   - Counting: wraps any allocator, counts outstanding slots
//   - Limited: wraps any allocator with a slot budget, fails with
//     ErrNoSpace when the budget would be exceeded
//
// Wrappers compose, so a test harness is one line:
//
//	a := alloc.NewCounting[User](alloc.NewLimited[User](nil, 64))
//
// # Usage Example
//
//	a := alloc.NewHeap[User]()
//
//	slots, err := a.Allocate(8)
//	if err != nil {
//	    return err
//	}
//
//	alloc.ConstructValue(&slots[0], User{Name: "ada"})
//	// ... use slots[0].Get() ...
//
//	alloc.Destroy(&slots[0])
//	a.Deallocate(slots)
//
// # Destructors
//
// Go has no destructors, so Destroy looks for one: a value whose
// pointer implements Disposable has Dispose called before the slot is
// cleared. pair.Pair implements it by disposing both elements, so a
// slot holding a pair tears down completely.
//
// # Failure Model
//
// ErrNoSpace is the only reportable error, returned from the Allocate
// family and propagated unwrapped. Every other contract violation is a
// programmer error handled by debug assertions, never by error
// returns. Nothing in this package retries, logs, or suppresses.
//
// # Thread Safety
//
// Allocator values are not safe for concurrent use. Callers
// synchronize externally; this package adds no locking of its own.
package alloc
