// Package pair provides Pair[A, B], the two-slot value type the
// container family uses for keyed elements.
//
// # Construction Rules
//
// Construction is an enumerated set of named factories, each the Go
// rendering of one rule from the original capability-gated matrix:
//
//   - New: default-construct both slots (zero values)
//   - Make: from two element values
//   - MakeWith: each slot built by its own constructor function
//   - Convert: from a pair of two other types, via per-element
//     converters
//   - ConvertMove: Convert, consuming the source pair
//
// Go draws no implicit/explicit conversion distinction, so the
// implicit and explicit variants of each original rule collapse into
// the single factory listed. Cross-type rules take converter functions
// instead of relying on conversion traits; a call without the needed
// converters fails to type-check, which keeps "no rule matches" a
// compile-time rejection.
//
// # Assignment and Comparison
//
// Assign, AssignMove, and Swap mutate element-wise, First then Second,
// and guard against self-aliasing. Equal short-circuits on First;
// Compare and Less order lexicographically. Every other relation
// (NotEqual, Greater, LessOrEqual, GreaterOrEqual) is derived from
// Equal and Less rather than restated, so the relations cannot drift
// apart. Func variants serve element types outside the comparable and
// cmp.Ordered constraints.
//
// # Lifetime
//
// A Pair owns its two elements and nothing else. Dispose tears both
// down (First then Second), so the allocator's Destroy handles pairs
// like any other value with a destructor.
package pair
