// Package uninit runs element lifetimes over ranges of slots.
//
// Functions taking a destination of raw slots either construct all of them
// or, on failure, destroy the ones they constructed and leave the range raw
// again. Functions operating on live ranges (assignment and shifts) stop at
// the first failure and leave every slot live.
package uninit

import (
	"fmt"

	"github.com/on-the-ground/vector_ive_go/element"
)

// ValueConstruct default-constructs every slot of dst.
func ValueConstruct[T any](dst []T) error {
	for i := range dst {
		if err := element.Construct(&dst[i]); err != nil {
			Destroy(dst[:i])
			return fmt.Errorf("slot %d: %w", i, err)
		}
	}
	return nil
}

// Copy copy-constructs src into the raw slots dst[:len(src)].
func Copy[T any](dst, src []T) error {
	for i := range src {
		if err := element.CopyConstruct(&dst[i], &src[i]); err != nil {
			Destroy(dst[:i])
			return fmt.Errorf("slot %d: %w", i, err)
		}
	}
	return nil
}

// Move move-constructs src into the raw slots dst[:len(src)]. src stays
// live in its moved-from state. If a fallible move fails, the moved-from
// prefix of src is not restored.
func Move[T any](dst, src []T) error {
	for i := range src {
		if err := element.MoveConstruct(&dst[i], &src[i]); err != nil {
			Destroy(dst[:i])
			return fmt.Errorf("slot %d: %w", i, err)
		}
	}
	return nil
}

// Transfer relocates src into the raw slots dst by moving or copying,
// whichever element.TransferByMove picks for T.
func Transfer[T any](dst, src []T) error {
	if element.TransferByMove[T]() {
		return Move(dst, src)
	}
	return Copy(dst, src)
}

// Destroy ends the lifetime of every value in s.
func Destroy[T any](s []T) {
	for i := range s {
		element.Destroy(&s[i])
	}
}

// AssignCopy copy-assigns src over the live dst[:len(src)].
func AssignCopy[T any](dst, src []T) error {
	for i := range src {
		if err := element.CopyAssign(&dst[i], &src[i]); err != nil {
			return fmt.Errorf("slot %d: %w", i, err)
		}
	}
	return nil
}

// ShiftLeft move-assigns s[i+1] into s[i] front to back. The last slot is
// left in its moved-from state.
func ShiftLeft[T any](s []T) error {
	for i := 0; i+1 < len(s); i++ {
		if err := element.MoveAssign(&s[i], &s[i+1]); err != nil {
			return fmt.Errorf("slot %d: %w", i, err)
		}
	}
	return nil
}

// ShiftRight move-assigns s[i-1] into s[i] back to front. The first slot is
// left in its moved-from state.
func ShiftRight[T any](s []T) error {
	for i := len(s) - 1; i > 0; i-- {
		if err := element.MoveAssign(&s[i], &s[i-1]); err != nil {
			return fmt.Errorf("slot %d: %w", i, err)
		}
	}
	return nil
}
