//go:build !release

package assert

import "fmt"

// That panics if cond is false, reporting the formatted message.
//
// That compiles to a no-op when built with the release build tag.
func That(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("precondition violated: "+format, args...))
	}
}
