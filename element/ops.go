package element

import (
	"errors"
	"fmt"
)

var ErrNotCopyable = errors.New("element type is not copyable")

// Copyable reports whether values of T may be copied.
func Copyable[T any]() bool {
	_, nonCopyable := any((*T)(nil)).(NonCopyable)
	return !nonCopyable
}

// NothrowMove reports whether move construction of T can never fail.
func NothrowMove[T any]() bool {
	p := any((*T)(nil))
	if _, ok := p.(Mover[T]); ok {
		return true
	}
	_, fallible := p.(FallibleMover[T])
	return !fallible
}

// TransferByMove reports whether existing elements are moved rather than
// copied when a container relocates them into new storage: moving is used
// when it cannot fail, or when copying is not available at all.
func TransferByMove[T any]() bool {
	return NothrowMove[T]() || !Copyable[T]()
}

// Transfer names the strategy picked by TransferByMove, for logs.
func Transfer[T any]() string {
	if TransferByMove[T]() {
		return "move"
	}
	return "copy"
}

// Construct default-constructs the raw slot dst.
func Construct[T any](dst *T) error {
	if in, ok := any(dst).(Initializer); ok {
		if err := in.Init(); err != nil {
			var zero T
			*dst = zero
			return fmt.Errorf("default construct: %w", err)
		}
	}
	return nil
}

// CopyConstruct builds a copy of src in the raw slot dst.
func CopyConstruct[T any](dst, src *T) error {
	if !Copyable[T]() {
		return ErrNotCopyable
	}
	if c, ok := any(dst).(Copier[T]); ok {
		if err := c.CopyFrom(src); err != nil {
			var zero T
			*dst = zero
			return fmt.Errorf("copy construct: %w", err)
		}
		return nil
	}
	*dst = *src
	return nil
}

// MoveConstruct moves src into the raw slot dst. src stays live in its
// moved-from state and still needs Destroy.
func MoveConstruct[T any](dst, src *T) error {
	switch m := any(dst).(type) {
	case Mover[T]:
		m.MoveFrom(src)
		return nil
	case FallibleMover[T]:
		if err := m.TryMoveFrom(src); err != nil {
			var zero T
			*dst = zero
			return fmt.Errorf("move construct: %w", err)
		}
		return nil
	}
	var zero T
	*dst, *src = *src, zero
	return nil
}

// CopyAssign overwrites the live dst with a copy of src. Without a
// CopyAssigner hook the old value of dst is destroyed before the copy.
func CopyAssign[T any](dst, src *T) error {
	if !Copyable[T]() {
		return ErrNotCopyable
	}
	if dst == src {
		return nil
	}
	if c, ok := any(dst).(CopyAssigner[T]); ok {
		if err := c.CopyAssign(src); err != nil {
			return fmt.Errorf("copy assign: %w", err)
		}
		return nil
	}
	destroyHook(dst)
	*dst = *src
	return nil
}

// MoveAssign overwrites the live dst with the value of src. Without a
// MoveAssigner hook the old value of dst is destroyed before the move.
func MoveAssign[T any](dst, src *T) error {
	if dst == src {
		return nil
	}
	if m, ok := any(dst).(MoveAssigner[T]); ok {
		if err := m.MoveAssign(src); err != nil {
			return fmt.Errorf("move assign: %w", err)
		}
		return nil
	}
	destroyHook(dst)
	var zero T
	*dst, *src = *src, zero
	return nil
}

// Destroy ends the lifetime of the value at p and returns the slot to its
// raw zero state.
func Destroy[T any](p *T) {
	destroyHook(p)
	var zero T
	*p = zero
}

func destroyHook[T any](p *T) {
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
	}
}
