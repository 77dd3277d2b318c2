package vector

import (
	"errors"
	"fmt"
	"reflect"

	"go.uber.org/multierr"
)

var ErrInvariant = errors.New("array invariant violated")

// Validate checks the size and raw-slot invariants and reports every
// violation it finds. It inspects each raw slot, so it is meant for tests
// and debugging.
func (v *DynamicArray[T]) Validate() error {
	var err error
	capacity := v.storage.Capacity()
	if v.size < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: negative size %d", ErrInvariant, v.size))
	}
	if v.size > capacity {
		err = multierr.Append(err, fmt.Errorf("%w: size %d exceeds capacity %d", ErrInvariant, v.size, capacity))
		return err
	}
	for i := max(v.size, 0); i < capacity; i++ {
		if !reflect.ValueOf(v.storage.At(i)).Elem().IsZero() {
			err = multierr.Append(err, fmt.Errorf("%w: raw slot %d holds a value", ErrInvariant, i))
		}
	}
	return err
}
