// Package orderedbuffer keeps a bounded window of values in sorted order and
// emits the smallest value once the window overflows.
package orderedbuffer

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/on-the-ground/vector_ive_go/vector"
)

var ErrClosedBuffer = errors.New("buffer is closed")

type CompareFunc[T any] func(a, b T) int

// OrderedBoundedBuffer has a single writer: Insert and Close must not be
// called concurrently. Only Source may be read from other goroutines.
type OrderedBoundedBuffer[T any] struct {
	data      *vector.DynamicArray[T]
	maxBufLen int
	compare   CompareFunc[T]

	sink   chan T
	closed atomic.Bool
}

// NewOrderedBoundedBuffer reserves room for maxBufLen+1 values so inserts
// never reallocate. opts are passed to the backing array.
func NewOrderedBoundedBuffer[T any](maxBufLen int, cmp CompareFunc[T], opts ...vector.Option) (*OrderedBoundedBuffer[T], error) {
	data := vector.New[T](opts...)
	if err := data.Reserve(maxBufLen + 1); err != nil {
		return nil, fmt.Errorf("ordered buffer: %w", err)
	}
	return &OrderedBoundedBuffer[T]{
		data:      data,
		maxBufLen: maxBufLen,
		compare:   cmp,
		sink:      make(chan T, maxBufLen*2),
	}, nil
}

// Insert places val after every value that compares equal to it. When the
// buffer overflows, the smallest value is sent to Source.
func (b *OrderedBoundedBuffer[T]) Insert(ctx context.Context, val T) error {
	if b.closed.Load() {
		return ErrClosedBuffer
	}

	idx := sort.Search(b.data.Size(), func(i int) bool {
		return b.compare(val, b.data.Get(i)) < 0
	})
	if _, err := b.data.InsertAt(idx, val); err != nil {
		return err
	}

	if b.data.Size() > b.maxBufLen {
		evicted := b.data.Get(0)
		if _, err := b.data.EraseAt(0); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case b.sink <- evicted:
		}
	}

	return nil
}

func (b *OrderedBoundedBuffer[T]) Len() int {
	return b.data.Size()
}

func (b *OrderedBoundedBuffer[T]) Source() <-chan T {
	return b.sink
}

// Close flushes the buffered values to Source in order, closes it and
// releases the backing array. Calls after the first do nothing.
func (b *OrderedBoundedBuffer[T]) Close(ctx context.Context) {
	if !b.closed.CompareAndSwap(false, true) {
		return
	}

	done := make(chan struct{})

	go func() {
		defer close(done)
		defer b.data.Release()
		for v := range b.data.Values() {
			select {
			case <-ctx.Done():
				return
			case b.sink <- v:
			}
		}
		close(b.sink)
	}()

	select {
	case <-done:
	case <-ctx.Done():
	}
}
