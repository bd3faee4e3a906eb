// Package util provides the value-movement primitives the allocator and
// pair packages are built on: destructive reads (Move, Exchange) and
// element-wise exchange (Swap, SwapRange).
//
// A "moved-from" value in this package is always the zero value of its
// type, which keeps every moved-from source valid to reuse, destroy, or
// dispose without special cases.
package util

// Move performs a destructive read: it returns the value at p and
// leaves the zero value behind.
func Move[T any](p *T) T {
	var zero T
	v := *p
	*p = zero
	return v
}

// Exchange stores v at p and returns the value previously there.
func Exchange[T any](p *T, v T) T {
	old := *p
	*p = v
	return old
}
