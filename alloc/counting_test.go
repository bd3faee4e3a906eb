package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCounting_NoLeakRoundTrip verifies deallocate(allocate(n)) leaves
// nothing outstanding, for a spread of sizes.
func TestCounting_NoLeakRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 7, 64, 1024} {
		c := NewCounting[int](nil)

		s, err := c.Allocate(n)
		require.NoError(t, err)
		require.Equal(t, n, c.Outstanding())

		c.Deallocate(s)
		assert.Zero(t, c.Outstanding(), "n=%d: all slots must come back", n)
		assert.Equal(t, n, c.Allocated())
		assert.Equal(t, n, c.Freed())
	}
}

// TestCounting_AllocateZeroSkipsSource verifies an empty request never
// reaches the wrapped allocator.
func TestCounting_AllocateZeroSkipsSource(t *testing.T) {
	c := NewCounting[int](nil)

	s, err := c.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, s)
	assert.Zero(t, c.SourceCalls(), "Allocate(0) must not contact the source")
	assert.Zero(t, c.Outstanding())
}

// TestCounting_DeallocateNilIsNoOp verifies nil deallocation changes
// no counters.
func TestCounting_DeallocateNilIsNoOp(t *testing.T) {
	c := NewCounting[int](nil)

	c.Deallocate(nil)
	c.DeallocateOne(nil)

	assert.Zero(t, c.Outstanding())
	assert.Zero(t, c.Freed())
}

// TestCounting_SingleSlotTraffic exercises the one-slot operations.
func TestCounting_SingleSlotTraffic(t *testing.T) {
	c := NewCounting[string](nil)

	s, err := c.AllocateOne()
	require.NoError(t, err)
	assert.Equal(t, 1, c.Outstanding())
	assert.Equal(t, 1, c.SourceCalls())

	c.DeallocateOne(s)
	assert.Zero(t, c.Outstanding())
}

// TestCounting_FailedAllocationLeavesCountsClean verifies an ErrNoSpace
// from the wrapped allocator is passed through without recording
// phantom slots.
func TestCounting_FailedAllocationLeavesCountsClean(t *testing.T) {
	c := NewCounting[int](NewLimited[int](nil, 2))

	_, err := c.Allocate(5)
	require.ErrorIs(t, err, ErrNoSpace)
	assert.Zero(t, c.Outstanding())
	assert.Zero(t, c.Allocated())
}

// TestCounting_UsableThroughInterface verifies Counting satisfies
// Allocator in consumer position, the intended injection point.
func TestCounting_UsableThroughInterface(t *testing.T) {
	var a Allocator[int] = NewCounting[int](nil)

	s, err := a.Allocate(3)
	require.NoError(t, err)
	for i := range s {
		Construct(&s[i])
	}
	DestroyRange(s)
	a.Deallocate(s)
}
