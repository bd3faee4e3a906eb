package util

import "github.com/joshuapare/containerkit/internal/assert"

// Swap exchanges the values at a and b. Swapping a value with itself
// is a no-op.
func Swap[T any](a, b *T) {
	if a == b {
		return
	}
	tmp := Move(a)
	*a = Move(b)
	*b = tmp
}

// SwapRange exchanges a[i] and b[i] for every index. The slices must
// have equal length; overlapping slices of the same array are not
// supported.
func SwapRange[T any](a, b []T) {
	assert.That(len(a) == len(b), "SwapRange: length mismatch (%d vs %d)", len(a), len(b))
	for i := range min(len(a), len(b)) {
		Swap(&a[i], &b[i])
	}
}
