// Package element defines how a container runs the lifetime of one value of T.
//
// Go has no constructors or destructors, so a type opts in to custom
// lifetime behaviour by implementing any of the hook interfaces below on
// its pointer receiver. Every hook is optional; without one the container
// falls back to plain Go value semantics:
//
//   - default construction yields the zero value
//   - copy construction is plain assignment
//   - move construction is plain assignment followed by zeroing the source
//   - copy and move assignment destroy the old value, then copy or move
//   - destruction runs Destroy, if any, and zeroes the slot
//
// A CopyAssigner or MoveAssigner hook replaces the whole default, so it is
// responsible for releasing whatever the overwritten value held.
//
// A type that owns a unique resource (a handle released in Destroy) should
// implement Mover or FallibleMover so that a moved-from value no longer
// refers to it, exactly as its Destroy will still run on the moved-from
// value. Destroy must therefore accept a zero or moved-from receiver.
package element

// Initializer is implemented by *T when the zero value is not a valid
// default-constructed T.
type Initializer interface {
	Init() error
}

// Destroyer is implemented by *T when a live value holds something that must
// be released. Destroy never fails.
type Destroyer interface {
	Destroy()
}

// Copier copy-constructs the receiver, a raw zero-valued slot, from src.
type Copier[T any] interface {
	CopyFrom(src *T) error
}

// CopyAssigner overwrites the live receiver with a copy of src.
type CopyAssigner[T any] interface {
	CopyAssign(src *T) error
}

// Mover move-constructs the receiver from src and cannot fail.
type Mover[T any] interface {
	MoveFrom(src *T)
}

// FallibleMover move-constructs the receiver from src and may fail. On
// failure src must still hold its value.
type FallibleMover[T any] interface {
	TryMoveFrom(src *T) error
}

// MoveAssigner overwrites the live receiver with the value of src, leaving
// src in a moved-from state.
type MoveAssigner[T any] interface {
	MoveAssign(src *T) error
}

// NonCopyable marks a type whose values must never be copied by the
// container.
type NonCopyable interface {
	NonCopyable()
}
