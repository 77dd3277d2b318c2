//go:build vectordebug

package rawstorage_test

import (
	"testing"

	"github.com/on-the-ground/vector_ive_go/internal/assert"
	"github.com/on-the-ground/vector_ive_go/rawstorage"
	"github.com/stretchr/testify/require"
)

func TestDebug_SlotOutOfRange(t *testing.T) {
	s, err := rawstorage.New[int](2)
	require.NoError(t, err)

	for _, fn := range []func(){
		func() { s.At(2) },
		func() { s.At(-1) },
		func() { s.Window(1, 3) },
		func() { s.Window(2, 1) },
	} {
		func() {
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok, "expected a precondition panic")
				require.ErrorIs(t, err, assert.ErrPrecondition)
			}()
			fn()
		}()
	}
}
