// Package rawstorage owns fixed-size blocks of element slots.
//
// A RawStorage never constructs or destroys the values that live in its
// slots; that is the job of the container built on top of it. It only
// allocates, releases and hands the block over.
package rawstorage

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/on-the-ground/vector_ive_go/internal/assert"
)

var ErrAllocation = errors.New("allocation failed")

// maxAllocBytes mirrors the largest heap object the runtime will hand out
// on 64-bit platforms.
const maxAllocBytes = uint64(1) << 47

// MaxCapacity returns the largest slot count New accepts for T.
func MaxCapacity[T any]() int {
	var zero T
	size := uint64(unsafe.Sizeof(zero))
	limit := uint64(^uint(0) >> 1)
	if size != 0 && maxAllocBytes/size < limit {
		limit = maxAllocBytes / size
	}
	return int(limit)
}

type RawStorage[T any] struct {
	buf []T
}

// New allocates capacity raw slots. A zero capacity yields the empty
// storage without allocating.
func New[T any](capacity int) (RawStorage[T], error) {
	if capacity < 0 || capacity > MaxCapacity[T]() {
		return RawStorage[T]{}, fmt.Errorf("%w: %d slots", ErrAllocation, capacity)
	}
	if capacity == 0 {
		return RawStorage[T]{}, nil
	}
	return RawStorage[T]{buf: make([]T, capacity)}, nil
}

func (s *RawStorage[T]) Capacity() int {
	return len(s.buf)
}

// At returns the address of slot offset.
func (s *RawStorage[T]) At(offset int) *T {
	if assert.Enabled {
		assert.That(offset >= 0 && offset < len(s.buf), "slot %d out of range [0, %d)", offset, len(s.buf))
	}
	return &s.buf[offset]
}

// Window returns the slots [from, to) without copying them. to may equal
// the capacity.
func (s *RawStorage[T]) Window(from, to int) []T {
	if assert.Enabled {
		assert.That(0 <= from && from <= to && to <= len(s.buf), "window [%d, %d) out of range [0, %d]", from, to, len(s.buf))
	}
	return s.buf[from:to:to]
}

func (s *RawStorage[T]) Swap(other *RawStorage[T]) {
	s.buf, other.buf = other.buf, s.buf
}

// Take transfers the block to a new RawStorage and leaves s empty.
func (s *RawStorage[T]) Take() RawStorage[T] {
	out := RawStorage[T]{buf: s.buf}
	s.buf = nil
	return out
}

// MoveFrom releases the block held by s and takes over the one held by
// other, leaving other empty.
func (s *RawStorage[T]) MoveFrom(other *RawStorage[T]) {
	if s == other {
		return
	}
	s.buf = other.buf
	other.buf = nil
}

// Release drops the block. Live values left in it are not destroyed.
func (s *RawStorage[T]) Release() {
	s.buf = nil
}
