package pair

import "cmp"

// Equal reports whether both elements are equal. Second is not
// examined when First already differs.
func Equal[A, B comparable](x, y Pair[A, B]) bool {
	return x.First == y.First && x.Second == y.Second
}

// Compare orders pairs lexicographically: First decides, Second breaks
// ties. The result follows the cmp convention (-1, 0, +1).
func Compare[A, B cmp.Ordered](x, y Pair[A, B]) int {
	if c := cmp.Compare(x.First, y.First); c != 0 {
		return c
	}
	return cmp.Compare(x.Second, y.Second)
}

// Less reports whether x orders before y.
func Less[A, B cmp.Ordered](x, y Pair[A, B]) bool {
	return Compare(x, y) < 0
}

// The remaining relations are derived from Equal and Less, never
// restated.

// NotEqual is the negation of Equal.
func NotEqual[A, B comparable](x, y Pair[A, B]) bool {
	return !Equal(x, y)
}

// Greater reports whether x orders after y.
func Greater[A, B cmp.Ordered](x, y Pair[A, B]) bool {
	return Less(y, x)
}

// LessOrEqual reports whether x does not order after y.
func LessOrEqual[A, B cmp.Ordered](x, y Pair[A, B]) bool {
	return !Less(y, x)
}

// GreaterOrEqual reports whether x does not order before y.
func GreaterOrEqual[A, B cmp.Ordered](x, y Pair[A, B]) bool {
	return !Less(x, y)
}

// EqualFunc is Equal for element types outside the comparable
// constraint. second is not consulted when first reports a difference.
func EqualFunc[A, B any](x, y Pair[A, B], first func(A, A) bool, second func(B, B) bool) bool {
	return first(x.First, y.First) && second(x.Second, y.Second)
}

// CompareFunc is Compare with caller-supplied three-way comparators.
// second is not consulted when first decides.
func CompareFunc[A, B any](x, y Pair[A, B], first func(A, A) int, second func(B, B) int) int {
	if c := first(x.First, y.First); c != 0 {
		return c
	}
	return second(x.Second, y.Second)
}

// LessFunc is Less with caller-supplied three-way comparators, derived
// from CompareFunc.
func LessFunc[A, B any](x, y Pair[A, B], first func(A, A) int, second func(B, B) int) bool {
	return CompareFunc(x, y, first, second) < 0
}
