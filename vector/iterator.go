package vector

import "github.com/on-the-ground/vector_ive_go/internal/assert"

// Iterator is a random-access position in a DynamicArray that can read and
// write the element it points at. It is an offset, so it survives
// reallocation, but an insertion or erase before it shifts what it refers
// to.
type Iterator[T any] struct {
	arr *DynamicArray[T]
	off int
}

// ConstIterator is a read-only Iterator.
type ConstIterator[T any] struct {
	it Iterator[T]
}

func (v *DynamicArray[T]) Begin() Iterator[T] {
	return Iterator[T]{arr: v}
}

func (v *DynamicArray[T]) End() Iterator[T] {
	return Iterator[T]{arr: v, off: v.size}
}

func (v *DynamicArray[T]) CBegin() ConstIterator[T] {
	return v.Begin().Const()
}

func (v *DynamicArray[T]) CEnd() ConstIterator[T] {
	return v.End().Const()
}

func (it Iterator[T]) Offset() int { return it.off }

func (it Iterator[T]) Add(n int) Iterator[T] {
	return Iterator[T]{arr: it.arr, off: it.off + n}
}

func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

// Sub returns the distance it - other.
func (it Iterator[T]) Sub(other Iterator[T]) int {
	if assert.Enabled {
		assert.That(it.arr == other.arr, "iterators of different arrays")
	}
	return it.off - other.off
}

func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.arr == other.arr && it.off == other.off
}

func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.Sub(other) < 0
}

// Ptr returns the address of the element it points at.
func (it Iterator[T]) Ptr() *T {
	return it.arr.At(it.off)
}

func (it Iterator[T]) Get() T {
	return *it.Ptr()
}

// Set replaces the element, as DynamicArray.Set does.
func (it Iterator[T]) Set(value T) {
	it.arr.Set(it.off, value)
}

func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{it: it}
}

func (it ConstIterator[T]) Offset() int { return it.it.off }

func (it ConstIterator[T]) Add(n int) ConstIterator[T] {
	return ConstIterator[T]{it: it.it.Add(n)}
}

func (it ConstIterator[T]) Next() ConstIterator[T] { return it.Add(1) }

func (it ConstIterator[T]) Prev() ConstIterator[T] { return it.Add(-1) }

func (it ConstIterator[T]) Sub(other ConstIterator[T]) int {
	return it.it.Sub(other.it)
}

func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.it.Equal(other.it)
}

func (it ConstIterator[T]) Less(other ConstIterator[T]) bool {
	return it.it.Less(other.it)
}

func (it ConstIterator[T]) Get() T {
	return it.it.Get()
}
