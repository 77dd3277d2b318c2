// Package assert holds the debug-only precondition checks.
//
// Checks compile to nothing unless the module is built with the
// `vectordebug` tag. Call sites guard on Enabled so the arguments are not
// evaluated in release builds:
//
//	if assert.Enabled {
//	    assert.That(i < n, "index %d out of range [0, %d)", i, n)
//	}
package assert

import (
	"errors"
	"fmt"
)

var ErrPrecondition = errors.New("precondition violated")

// That panics with ErrPrecondition when cond is false.
func That(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("%w: %s", ErrPrecondition, fmt.Sprintf(format, args...)))
	}
}
