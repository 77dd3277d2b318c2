package vector

import (
	"fmt"

	"github.com/on-the-ground/vector_ive_go/element"
	"github.com/on-the-ground/vector_ive_go/internal/assert"
	"github.com/on-the-ground/vector_ive_go/internal/uninit"
	"github.com/on-the-ground/vector_ive_go/rawstorage"
)

// PushBack appends value. The value is placed as is: no element hook runs
// for it, and the array owns it from the call on. If PushBack fails the
// value is destroyed, so a caller must not keep using anything it shares
// with the value it passed.
func (v *DynamicArray[T]) PushBack(value T) error {
	if v.size < v.storage.Capacity() {
		*v.storage.At(v.size) = value
		v.size++
		return nil
	}
	_, err := v.EmplaceBack(func(slot *T) error {
		*slot = value
		return nil
	})
	return err
}

// EmplaceBack constructs a new last element in place with construct and
// returns its address. A nil construct default-constructs the element.
func (v *DynamicArray[T]) EmplaceBack(construct func(*T) error) (*T, error) {
	construct = orDefault(construct)
	if v.size < v.storage.Capacity() {
		slot := v.storage.At(v.size)
		if err := build(slot, construct); err != nil {
			return nil, fmt.Errorf("emplace back: %w", err)
		}
		v.size++
		return slot, nil
	}
	if err := v.relocate("emplace_back", v.grownCapacity(), v.size, construct); err != nil {
		return nil, err
	}
	v.size++
	return v.storage.At(v.size - 1), nil
}

// PopBack destroys the last element. The array must not be empty.
func (v *DynamicArray[T]) PopBack() {
	if assert.Enabled {
		assert.That(v.size > 0, "PopBack on empty array")
	}
	element.Destroy(v.storage.At(v.size - 1))
	v.size--
}

// Insert places value before pos and returns an iterator to it. Like
// PushBack it takes ownership of value and destroys it on failure.
func (v *DynamicArray[T]) Insert(pos ConstIterator[T], value T) (Iterator[T], error) {
	return v.Emplace(pos, func(slot *T) error {
		*slot = value
		return nil
	})
}

// InsertAt is Insert at index i.
func (v *DynamicArray[T]) InsertAt(i int, value T) (Iterator[T], error) {
	return v.Insert(v.CBegin().Add(i), value)
}

// Emplace constructs a new element before pos with construct and returns
// an iterator to it. A nil construct default-constructs the element.
//
// When the array is full the new element is built in fresh storage first
// and the old elements are relocated around it; any failure leaves the
// array unchanged. Otherwise, for a position before the end, the element
// is built in a temporary and the tail is shifted right by one through
// move-assignment; a failing move-assignment leaves the tail partially
// shifted, with one more live element than before.
func (v *DynamicArray[T]) Emplace(pos ConstIterator[T], construct func(*T) error) (Iterator[T], error) {
	offset := pos.Offset()
	if assert.Enabled {
		assert.That(pos.it.arr == v, "iterator belongs to another array")
		assert.That(offset >= 0 && offset <= v.size, "position %d out of range [0, %d]", offset, v.size)
	}
	construct = orDefault(construct)

	switch {
	case v.size == v.storage.Capacity():
		if err := v.relocate("emplace", v.grownCapacity(), offset, construct); err != nil {
			return Iterator[T]{}, err
		}
		v.size++
	case offset == v.size:
		if err := build(v.storage.At(offset), construct); err != nil {
			return Iterator[T]{}, fmt.Errorf("emplace: %w", err)
		}
		v.size++
	default:
		if err := v.shiftInsert(offset, construct); err != nil {
			v.logRolledBack("emplace", err)
			return Iterator[T]{}, fmt.Errorf("emplace: %w", err)
		}
	}
	return Iterator[T]{arr: v, off: offset}, nil
}

// shiftInsert inserts before offset < size without reallocating.
func (v *DynamicArray[T]) shiftInsert(offset int, construct func(*T) error) error {
	var tmp T
	if err := build(&tmp, construct); err != nil {
		return err
	}
	if err := element.MoveConstruct(v.storage.At(v.size), v.storage.At(v.size-1)); err != nil {
		element.Destroy(&tmp)
		return err
	}
	v.size++
	if err := uninit.ShiftRight(v.storage.Window(offset, v.size-1)); err != nil {
		element.Destroy(&tmp)
		return err
	}
	err := element.MoveAssign(v.storage.At(offset), &tmp)
	element.Destroy(&tmp)
	return err
}

// Erase removes the element at pos and returns an iterator to the element
// that took its place. Later elements shift left through move-assignment;
// the vacated last slot is destroyed. If a move-assignment fails the size
// is unchanged and the values are partially shifted.
func (v *DynamicArray[T]) Erase(pos ConstIterator[T]) (Iterator[T], error) {
	offset := pos.Offset()
	if assert.Enabled {
		assert.That(pos.it.arr == v, "iterator belongs to another array")
		assert.That(offset >= 0 && offset < v.size, "position %d out of range [0, %d)", offset, v.size)
	}
	if err := uninit.ShiftLeft(v.storage.Window(offset, v.size)); err != nil {
		return Iterator[T]{arr: v, off: offset}, fmt.Errorf("erase: %w", err)
	}
	v.size--
	element.Destroy(v.storage.At(v.size))
	return Iterator[T]{arr: v, off: offset}, nil
}

// EraseAt is Erase at index i.
func (v *DynamicArray[T]) EraseAt(i int) (Iterator[T], error) {
	return v.Erase(v.CBegin().Add(i))
}

// Resize grows the array with default-constructed elements or destroys
// trailing elements until it holds n. Growing reserves exactly n slots when
// the capacity is short. A failed construction destroys the elements built
// so far and keeps the size.
func (v *DynamicArray[T]) Resize(n int) error {
	if assert.Enabled {
		assert.That(n >= 0, "negative size %d", n)
	}
	if n <= v.size {
		uninit.Destroy(v.storage.Window(n, v.size))
		v.size = n
		return nil
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	if err := uninit.ValueConstruct(v.storage.Window(v.size, n)); err != nil {
		return fmt.Errorf("resize: %w", err)
	}
	v.size = n
	return nil
}

// Reserve makes room for at least capacity elements. It never shrinks and
// does nothing when the capacity is already large enough.
func (v *DynamicArray[T]) Reserve(capacity int) error {
	if capacity <= v.storage.Capacity() {
		return nil
	}
	return v.relocate("reserve", capacity, -1, nil)
}

func (v *DynamicArray[T]) grownCapacity() int {
	if v.size == 0 {
		return 1
	}
	// Overflow turns negative and is refused by rawstorage.New.
	return v.size * 2
}

// relocate moves the live elements into a new block of newCap slots. With
// a non-nil construct the new element is built at offset first and the
// old elements are placed around it. On failure the old block is left as
// it was.
func (v *DynamicArray[T]) relocate(op string, newCap, offset int, construct func(*T) error) error {
	fresh, err := rawstorage.New[T](newCap)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	live := v.Slice()

	if construct == nil {
		if err := uninit.Transfer(fresh.Window(0, v.size), live); err != nil {
			v.logRolledBack(op, err)
			return fmt.Errorf("%s: %w", op, err)
		}
	} else {
		slot := fresh.At(offset)
		if err := build(slot, construct); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if err := uninit.Transfer(fresh.Window(0, offset), live[:offset]); err != nil {
			element.Destroy(slot)
			v.logRolledBack(op, err)
			return fmt.Errorf("%s: %w", op, err)
		}
		if err := uninit.Transfer(fresh.Window(offset+1, v.size+1), live[offset:]); err != nil {
			uninit.Destroy(fresh.Window(0, offset+1))
			v.logRolledBack(op, err)
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	oldCap := v.storage.Capacity()
	uninit.Destroy(live)
	v.storage.Swap(&fresh)
	fresh.Release()
	v.logReallocated(op, oldCap)
	return nil
}

func orDefault[T any](construct func(*T) error) func(*T) error {
	if construct == nil {
		return element.Construct[T]
	}
	return construct
}

// build runs construct on the raw slot and puts the slot back to its raw
// state if construct fails.
func build[T any](slot *T, construct func(*T) error) error {
	if err := construct(slot); err != nil {
		var zero T
		*slot = zero
		return err
	}
	return nil
}
