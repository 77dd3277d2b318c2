package vector

import (
	"iter"
	"reflect"

	"go.uber.org/zap"

	"github.com/on-the-ground/vector_ive_go/element"
	"github.com/on-the-ground/vector_ive_go/internal/assert"
	"github.com/on-the-ground/vector_ive_go/internal/uninit"
	"github.com/on-the-ground/vector_ive_go/rawstorage"
)

var ErrNotCopyable = element.ErrNotCopyable

// noCopy lets `go vet` report DynamicArray values copied by assignment.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// DynamicArray is a growable array of T. The zero value is an empty array
// ready to use.
type DynamicArray[T any] struct {
	_ noCopy

	storage rawstorage.RawStorage[T]
	size    int

	opts options
	log  *zap.Logger
}

// New returns an empty array with no capacity.
func New[T any](opts ...Option) *DynamicArray[T] {
	return newWithOptions[T](newOptions(opts))
}

func newWithOptions[T any](o options) *DynamicArray[T] {
	return &DynamicArray[T]{
		opts: o,
		log:  o.instanceLogger(reflect.TypeFor[T]()),
	}
}

// WithSize returns an array holding n default-constructed elements and
// exactly n slots of capacity.
func WithSize[T any](n int, opts ...Option) (*DynamicArray[T], error) {
	storage, err := rawstorage.New[T](n)
	if err != nil {
		return nil, err
	}
	if err := uninit.ValueConstruct(storage.Window(0, n)); err != nil {
		return nil, err
	}
	v := New[T](opts...)
	v.storage = storage
	v.size = n
	return v, nil
}

// Clone returns a copy of v with capacity equal to v's size. It uses v's
// options but gets a new identity in logs.
func (v *DynamicArray[T]) Clone() (*DynamicArray[T], error) {
	if !element.Copyable[T]() {
		return nil, ErrNotCopyable
	}
	storage, err := rawstorage.New[T](v.size)
	if err != nil {
		return nil, err
	}
	if err := uninit.Copy(storage.Window(0, v.size), v.Slice()); err != nil {
		return nil, err
	}
	out := newWithOptions[T](v.opts)
	out.storage = storage
	out.size = v.size
	return out, nil
}

// Take moves the contents of v into a new array in O(1). v is left empty
// with no capacity and stays usable.
func (v *DynamicArray[T]) Take() *DynamicArray[T] {
	out := newWithOptions[T](v.opts)
	out.storage.MoveFrom(&v.storage)
	out.size, v.size = v.size, 0
	return out
}

// CopyFrom makes v an element-wise copy of src.
//
// When src does not fit in v's capacity a full copy is built first and
// swapped in, so a failure leaves v untouched. Otherwise the overlapping
// prefix is copy-assigned in place and only the live-slot invariant is
// kept on failure.
func (v *DynamicArray[T]) CopyFrom(src *DynamicArray[T]) error {
	if v == src {
		return nil
	}
	if !element.Copyable[T]() {
		return ErrNotCopyable
	}
	if src.size > v.storage.Capacity() {
		tmp, err := src.Clone()
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Release()
		return nil
	}

	live, from := v.Slice(), src.Slice()
	if src.size < v.size {
		if err := uninit.AssignCopy(live, from); err != nil {
			return err
		}
		uninit.Destroy(live[src.size:])
	} else {
		if err := uninit.AssignCopy(live, from[:v.size]); err != nil {
			return err
		}
		if err := uninit.Copy(v.storage.Window(v.size, src.size), from[v.size:]); err != nil {
			return err
		}
	}
	v.size = src.size
	return nil
}

// MoveFrom destroys the elements of v and takes over the storage of src.
// src is left empty with no capacity. Moving an array into itself does
// nothing.
func (v *DynamicArray[T]) MoveFrom(src *DynamicArray[T]) {
	if v == src {
		return
	}
	v.Release()
	v.storage.MoveFrom(&src.storage)
	v.size, src.size = src.size, 0
}

// Swap exchanges the contents of v and other in O(1). Options stay with
// their arrays.
func (v *DynamicArray[T]) Swap(other *DynamicArray[T]) {
	if v == other {
		return
	}
	v.storage.Swap(&other.storage)
	v.size, other.size = other.size, v.size
}

// Release destroys every element and frees the storage. Element types with
// a Destroy hook need it called once the array is no longer used.
func (v *DynamicArray[T]) Release() {
	released := v.size
	capacity := v.storage.Capacity()
	uninit.Destroy(v.Slice())
	v.storage.Release()
	v.size = 0
	if ce := v.logger().Check(zap.DebugLevel, "storage released"); ce != nil {
		ce.Write(zap.Int("size", released), zap.Int("capacity", capacity))
	}
}

// Clear destroys every element and keeps the capacity.
func (v *DynamicArray[T]) Clear() {
	uninit.Destroy(v.Slice())
	v.size = 0
}

func (v *DynamicArray[T]) Size() int {
	return v.size
}

func (v *DynamicArray[T]) Capacity() int {
	return v.storage.Capacity()
}

func (v *DynamicArray[T]) Empty() bool {
	return v.size == 0
}

// At returns the address of element i. The address stays valid until the
// next reallocation.
func (v *DynamicArray[T]) At(i int) *T {
	if assert.Enabled {
		assert.That(i >= 0 && i < v.size, "index %d out of range [0, %d)", i, v.size)
	}
	return v.storage.At(i)
}

func (v *DynamicArray[T]) Get(i int) T {
	return *v.At(i)
}

// Set destroys element i and puts value in its place.
func (v *DynamicArray[T]) Set(i int, value T) {
	p := v.At(i)
	element.Destroy(p)
	*p = value
}

func (v *DynamicArray[T]) Front() *T {
	return v.At(0)
}

func (v *DynamicArray[T]) Back() *T {
	return v.At(v.size - 1)
}

// Slice returns the live elements. It shares memory with v and cannot be
// appended to without copying.
func (v *DynamicArray[T]) Slice() []T {
	return v.storage.Window(0, v.size)
}

// All yields index-value pairs front to back.
func (v *DynamicArray[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.storage.At(i)) {
				return
			}
		}
	}
}

// Values yields the elements front to back.
func (v *DynamicArray[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(*v.storage.At(i)) {
				return
			}
		}
	}
}

// Pointers yields the index and address of every element, for in-place
// updates.
func (v *DynamicArray[T]) Pointers() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.storage.At(i)) {
				return
			}
		}
	}
}

// Backward yields index-value pairs back to front.
func (v *DynamicArray[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, *v.storage.At(i)) {
				return
			}
		}
	}
}

func (v *DynamicArray[T]) logger() *zap.Logger {
	if v.log == nil {
		return nopLogger
	}
	return v.log
}

func (v *DynamicArray[T]) logReallocated(op string, oldCap int) {
	if ce := v.logger().Check(zap.DebugLevel, "storage reallocated"); ce != nil {
		ce.Write(
			zap.String("op", op),
			zap.Int("old_capacity", oldCap),
			zap.Int("new_capacity", v.storage.Capacity()),
			zap.Int("size", v.size),
			zap.String("transfer", element.Transfer[T]()),
		)
	}
}

func (v *DynamicArray[T]) logRolledBack(op string, err error) {
	if ce := v.logger().Check(zap.DebugLevel, "operation rolled back"); ce != nil {
		ce.Write(
			zap.String("op", op),
			zap.Int("size", v.size),
			zap.Int("capacity", v.storage.Capacity()),
			zap.Error(err),
		)
	}
}
