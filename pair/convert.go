package pair

import "github.com/joshuapare/containerkit/util"

// Convert builds a Pair[A, B] from a pair of two other types, passing
// each element through its converter. The converter functions are the
// capability evidence: without one per element the call does not type
// check, which is the compile-time rejection for "no construction rule
// matches".
func Convert[A, B, O1, O2 any](src Pair[O1, O2], first func(O1) A, second func(O2) B) Pair[A, B] {
	return Pair[A, B]{First: first(src.First), Second: second(src.Second)}
}

// ConvertMove is Convert for a source pair that is consumed: each
// element is moved out before conversion, leaving src's elements as
// zero values.
func ConvertMove[A, B, O1, O2 any](src *Pair[O1, O2], first func(O1) A, second func(O2) B) Pair[A, B] {
	return Pair[A, B]{
		First:  first(util.Move(&src.First)),
		Second: second(util.Move(&src.Second)),
	}
}
