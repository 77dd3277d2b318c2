// Package tracked provides instrumented element types for tests.
//
// Every hook increments a package-level counter and can be told to fail
// on its n-th call. Counters are global, so tests using this package must
// not run in parallel and should call Reset first.
package tracked

import (
	"errors"
	"fmt"
)

type Op int

const (
	OpInit Op = iota
	OpCopy
	OpMove
	OpCopyAssign
	OpMoveAssign
	OpDestroy
	numOps
)

func (op Op) String() string {
	switch op {
	case OpInit:
		return "init"
	case OpCopy:
		return "copy"
	case OpMove:
		return "move"
	case OpCopyAssign:
		return "copy_assign"
	case OpMoveAssign:
		return "move_assign"
	case OpDestroy:
		return "destroy"
	default:
		return fmt.Sprintf("op(%d)", int(op))
	}
}

var ErrInjected = errors.New("injected failure")

type stats struct {
	counts  [numOps]int
	failIn  [numOps]int // calls left before failure, -1 = never
	live    int
	strayed int
	dropped []int // payloads of destroyed Plain values
}

var st = newStats()

func newStats() stats {
	s := stats{}
	for i := range s.failIn {
		s.failIn[i] = -1
	}
	return s
}

// Reset clears all counters and pending failures.
func Reset() {
	st = newStats()
}

// ResetCounts clears the operation counters but keeps the live count.
func ResetCounts() {
	st.counts = [numOps]int{}
}

// Count returns how many times op succeeded since the last reset.
func Count(op Op) int {
	return st.counts[op]
}

// Live returns the number of constructed and not yet destroyed values.
func Live() int {
	return st.live
}

// Stray returns how many times Destroy ran on a value that was not live.
func Stray() int {
	return st.strayed
}

// Destroyed returns the payloads of the Plain values destroyed since the last
// reset, in order.
func Destroyed() []int {
	return append([]int(nil), st.dropped...)
}

// FailAfter makes op fail once after n more successful calls.
func FailAfter(op Op, n int) {
	st.failIn[op] = n
}

func hit(op Op) error {
	switch st.failIn[op] {
	case -1:
	case 0:
		st.failIn[op] = -1
		return fmt.Errorf("%w: %v", ErrInjected, op)
	default:
		st.failIn[op]--
	}
	st.counts[op]++
	return nil
}

func destroyed(live *bool) {
	_ = hit(OpDestroy)
	if !*live {
		st.strayed++
		return
	}
	*live = false
	st.live--
}

// Valuer is implemented by all tracked types.
type Valuer interface {
	Value() int
}

// Ints extracts the payloads of vals.
func Ints[T Valuer](vals []T) []int {
	out := make([]int, len(vals))
	for i, v := range vals {
		out[i] = v.Value()
	}
	return out
}
