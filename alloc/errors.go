package alloc

import "errors"

var (
	// ErrNoSpace indicates the allocation source could not satisfy the
	// requested number of slots. It is the only error this package
	// reports; it propagates to the caller unwrapped and is never
	// retried internally.
	ErrNoSpace = errors.New("alloc: out of space")
)
