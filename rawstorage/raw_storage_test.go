package rawstorage_test

import (
	"testing"

	"github.com/on-the-ground/vector_ive_go/rawstorage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ZeroCapacityIsEmpty(t *testing.T) {
	s, err := rawstorage.New[int](0)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Capacity())
	assert.Empty(t, s.Window(0, 0))
}

func TestNew_AllocatesZeroedSlots(t *testing.T) {
	s, err := rawstorage.New[string](4)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Capacity())
	assert.Equal(t, []string{"", "", "", ""}, s.Window(0, 4))

	*s.At(2) = "x"
	assert.Equal(t, "x", s.Window(0, 4)[2])
}

func TestNew_RejectsImpossibleRequests(t *testing.T) {
	_, err := rawstorage.New[int](-1)
	assert.ErrorIs(t, err, rawstorage.ErrAllocation)

	_, err = rawstorage.New[[1024]byte](rawstorage.MaxCapacity[[1024]byte]() + 1)
	assert.ErrorIs(t, err, rawstorage.ErrAllocation)
}

func TestMaxCapacity_ZeroSizedTypes(t *testing.T) {
	assert.Equal(t, int(^uint(0)>>1), rawstorage.MaxCapacity[struct{}]())
	assert.Less(t, rawstorage.MaxCapacity[int64](), rawstorage.MaxCapacity[int8]())
}

func TestTakeAndMoveFrom_LeaveSourceEmpty(t *testing.T) {
	a, err := rawstorage.New[int](3)
	require.NoError(t, err)
	*a.At(0) = 42

	b := a.Take()
	assert.Equal(t, 0, a.Capacity())
	assert.Equal(t, 3, b.Capacity())
	assert.Equal(t, 42, *b.At(0))

	var c rawstorage.RawStorage[int]
	c.MoveFrom(&b)
	assert.Equal(t, 0, b.Capacity())
	assert.Equal(t, 3, c.Capacity())

	c.MoveFrom(&c)
	assert.Equal(t, 3, c.Capacity(), "self move is a no-op")
}

func TestSwap(t *testing.T) {
	a, _ := rawstorage.New[int](1)
	b, _ := rawstorage.New[int](5)
	*a.At(0) = 1

	a.Swap(&b)
	assert.Equal(t, 5, a.Capacity())
	assert.Equal(t, 1, b.Capacity())
	assert.Equal(t, 1, *b.At(0))
}

func TestRelease(t *testing.T) {
	s, _ := rawstorage.New[int](8)
	s.Release()
	assert.Equal(t, 0, s.Capacity())
}

func TestWindow_IsCappedAtItsEnd(t *testing.T) {
	s, _ := rawstorage.New[int](4)
	w := s.Window(1, 2)
	assert.Equal(t, 1, len(w))
	assert.Equal(t, 1, cap(w))
}
