package core

import "fmt"

// Assert panics with a formatted message when condition is false, but only in
// binaries built with the "debug" tag. In default builds debugAssertions is a
// false constant and the check compiles away.
func Assert(condition bool, format string, args ...interface{}) {
	if debugAssertions && !condition {
		panic(fmt.Sprintf("assertion failed: "+format, args...))
	}
}

// AssertionsEnabled reports whether this binary checks invariants
func AssertionsEnabled() bool {
	return debugAssertions
}
