package pair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// relic is an element type with a destructor; it records disposals
// into a shared log.
type relic struct {
	log *[]string
	id  string
}

func (r *relic) Dispose() {
	*r.log = append(*r.log, r.id)
}

// TestMake_RoundTrip verifies the make_pair law: both inputs come back
// out unchanged.
func TestMake_RoundTrip(t *testing.T) {
	p := Make(42, "answer")

	assert.Equal(t, 42, p.First)
	assert.Equal(t, "answer", p.Second)
}

// TestNew_DefaultConstruction verifies both slots hold zero values.
func TestNew_DefaultConstruction(t *testing.T) {
	p := New[int, string]()

	assert.Zero(t, p.First)
	assert.Empty(t, p.Second)
}

// TestMakeWith builds each slot through its own constructor.
func TestMakeWith(t *testing.T) {
	var built []string
	p := MakeWith(
		func() int { built = append(built, "first"); return 7 },
		func() string { built = append(built, "second"); return "seven" },
	)

	assert.Equal(t, Make(7, "seven"), p)
	assert.Equal(t, []string{"first", "second"}, built, "slots are built in order, once each")
}

// TestAssign copies element-wise and tolerates self-assignment.
func TestAssign(t *testing.T) {
	p := Make(1, "a")
	q := Make(2, "b")

	p.Assign(&q)
	assert.Equal(t, Make(2, "b"), p)
	assert.Equal(t, Make(2, "b"), q, "copy assignment must not disturb the source")

	p.Assign(&p)
	assert.Equal(t, Make(2, "b"), p, "self-assignment must leave the value unchanged")
}

// TestAssignMove moves element-wise, zeroing the source, and tolerates
// self-assignment.
func TestAssignMove(t *testing.T) {
	p := Make(1, "a")
	q := Make(2, "b")

	p.AssignMove(&q)
	assert.Equal(t, Make(2, "b"), p)
	assert.Equal(t, Make(0, ""), q, "moved-from pair holds zero values")

	p.AssignMove(&p)
	assert.Equal(t, Make(2, "b"), p, "self-move must leave the value unchanged")
}

// TestSwap_Involution verifies two swaps restore both pairs, and that
// self-swap is harmless.
func TestSwap_Involution(t *testing.T) {
	p := Make(1, "a")
	q := Make(2, "b")

	p.Swap(&q)
	require.Equal(t, Make(2, "b"), p)
	require.Equal(t, Make(1, "a"), q)

	p.Swap(&q)
	require.Equal(t, Make(1, "a"), p)
	require.Equal(t, Make(2, "b"), q)

	p.Swap(&p)
	assert.Equal(t, Make(1, "a"), p, "self-swap must leave the value unchanged")
}

// TestDispose_BothElementsInOrder verifies pair teardown destroys
// First then Second, exactly once each.
func TestDispose_BothElementsInOrder(t *testing.T) {
	var log []string
	p := Make(relic{log: &log, id: "first"}, relic{log: &log, id: "second"})

	p.Dispose()

	require.Equal(t, []string{"first", "second"}, log)
}

// TestDispose_MixedElements verifies elements without a destructor are
// simply skipped.
func TestDispose_MixedElements(t *testing.T) {
	var log []string
	p := Make(42, relic{log: &log, id: "second"})

	p.Dispose()

	require.Equal(t, []string{"second"}, log)
}

// TestElements exposes both members untyped.
func TestElements(t *testing.T) {
	first, second := Make(1, "a").Elements()

	assert.Equal(t, 1, first)
	assert.Equal(t, "a", second)
}
