package vector_test

import (
	"testing"

	"github.com/on-the-ground/vector_ive_go/internal/tracked"
	"github.com/on-the-ground/vector_ive_go/rawstorage"
	"github.com/on-the-ground/vector_ive_go/vector"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fallibles(t *testing.T, vals ...int) *vector.DynamicArray[tracked.FallibleObj] {
	t.Helper()
	v := vector.New[tracked.FallibleObj]()
	for _, x := range vals {
		require.NoError(t, v.PushBack(tracked.NewFallible(x)))
	}
	return v
}

func TestReserve_FailedCopyLeavesArrayUntouched(t *testing.T) {
	tracked.Reset()
	v := fallibles(t, 1, 2, 3)

	tracked.FailAfter(tracked.OpCopy, 1)
	err := v.Reserve(10)
	require.ErrorIs(t, err, tracked.ErrInjected)

	assert.Equal(t, 4, v.Capacity())
	assert.Equal(t, []int{1, 2, 3}, tracked.Ints(v.Slice()))
	assert.Equal(t, 3, tracked.Live())
	require.NoError(t, v.Validate())
	v.Release()
	assert.Equal(t, 0, tracked.Live())
}

func TestPushBack_FailedGrowthLeavesArrayUntouched(t *testing.T) {
	tracked.Reset()
	v := fallibles(t, 1, 2)

	tracked.FailAfter(tracked.OpCopy, 0)
	err := v.PushBack(tracked.NewFallible(3))
	require.ErrorIs(t, err, tracked.ErrInjected)

	assert.Equal(t, 2, v.Size())
	assert.Equal(t, 2, v.Capacity())
	assert.Equal(t, []int{1, 2}, tracked.Ints(v.Slice()))
	assert.Equal(t, 2, tracked.Live(), "the pushed value is destroyed on failure")
	v.Release()
}

func TestInsert_FailedReallocationRollsBack(t *testing.T) {
	tests := []struct {
		name      string
		copiesOK  int
		wantCopy  int
		wantDtors int
	}{
		{"prefix fails", 1, 1, 2},
		{"suffix fails", 3, 3, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tracked.Reset()
			v := fallibles(t, 1, 2, 3, 4)
			tracked.ResetCounts()

			tracked.FailAfter(tracked.OpCopy, tt.copiesOK)
			_, err := v.InsertAt(2, tracked.NewFallible(9))
			require.ErrorIs(t, err, tracked.ErrInjected)

			assert.Equal(t, tt.wantCopy, tracked.Count(tracked.OpCopy))
			assert.Equal(t, tt.wantDtors, tracked.Count(tracked.OpDestroy))
			assert.Equal(t, []int{1, 2, 3, 4}, tracked.Ints(v.Slice()))
			assert.Equal(t, 4, v.Capacity())
			assert.Equal(t, 4, tracked.Live())
			require.NoError(t, v.Validate())
			v.Release()
		})
	}
}

func TestInsert_InPlaceShiftFailureIsPartial(t *testing.T) {
	tracked.Reset()
	v := objs(t, 1, 2, 3)
	require.NoError(t, v.Reserve(8))

	tracked.FailAfter(tracked.OpMoveAssign, 1)
	_, err := v.InsertAt(0, tracked.New(9))
	require.ErrorIs(t, err, tracked.ErrInjected)

	assert.Equal(t, 4, v.Size(), "the tail grew before the shift failed")
	assert.Equal(t, []int{1, 0, 2, 3}, tracked.Ints(v.Slice()))
	assert.Equal(t, 4, tracked.Live())
	require.NoError(t, v.Validate())
	v.Release()
	assert.Equal(t, 0, tracked.Live())
}

func TestErase_ShiftFailureKeepsSize(t *testing.T) {
	tracked.Reset()
	v := objs(t, 1, 2, 3, 4)

	tracked.FailAfter(tracked.OpMoveAssign, 1)
	_, err := v.EraseAt(0)
	require.ErrorIs(t, err, tracked.ErrInjected)

	assert.Equal(t, 4, v.Size())
	assert.Equal(t, []int{2, 0, 3, 4}, tracked.Ints(v.Slice()))
	assert.Equal(t, 4, tracked.Live())
	v.Release()
}

func TestResize_FailedConstructionKeepsSize(t *testing.T) {
	tracked.Reset()
	v := objs(t, 1)

	tracked.FailAfter(tracked.OpInit, 2)
	err := v.Resize(5)
	require.ErrorIs(t, err, tracked.ErrInjected)

	assert.Equal(t, 1, v.Size())
	assert.Equal(t, 5, v.Capacity())
	assert.Equal(t, 1, tracked.Live())
	require.NoError(t, v.Validate())
	v.Release()
}

func TestReserve_AllocationFailure(t *testing.T) {
	v := ints(1, 2)
	err := v.Reserve(rawstorage.MaxCapacity[int]() + 1)
	require.ErrorIs(t, err, rawstorage.ErrAllocation)
	assert.Equal(t, []int{1, 2}, v.Slice())
	assert.Equal(t, 2, v.Capacity())

	_, err = vector.WithSize[int](-1)
	assert.ErrorIs(t, err, rawstorage.ErrAllocation)
}

func TestCopyFrom_FailedCloneLeavesTargetUntouched(t *testing.T) {
	tracked.Reset()
	a := fallibles(t, 1)
	b := fallibles(t, 5, 6, 7)

	tracked.FailAfter(tracked.OpCopy, 1)
	require.ErrorIs(t, a.CopyFrom(b), tracked.ErrInjected)
	assert.Equal(t, []int{1}, tracked.Ints(a.Slice()))
	assert.Equal(t, 1, a.Capacity())
	assert.Equal(t, 4, tracked.Live())
	a.Release()
	b.Release()
}

func TestGrowth_FailedMoveOfNonCopyable(t *testing.T) {
	tracked.Reset()
	v := vector.New[tracked.UniqueObj]()
	for i := 1; i <= 4; i++ {
		require.NoError(t, v.PushBack(tracked.NewUnique(i)))
	}

	tracked.FailAfter(tracked.OpMove, 2)
	err := v.PushBack(tracked.NewUnique(5))
	require.ErrorIs(t, err, tracked.ErrInjected)

	assert.Equal(t, 4, v.Size())
	assert.Equal(t, 4, v.Capacity())
	assert.Equal(t, []int{0, 0, 3, 4}, tracked.Ints(v.Slice()), "moved-from prefix is not restored")
	assert.Equal(t, 4, tracked.Live())
	v.Release()
	assert.Equal(t, 0, tracked.Live())
	assert.Equal(t, 0, tracked.Stray())
}

func TestEmplace_FailingConstructorLeavesSlotRaw(t *testing.T) {
	v := ints(1, 2)
	require.NoError(t, v.Reserve(4))

	_, err := v.Emplace(v.CEnd(), func(slot *int) error {
		*slot = 5
		return tracked.ErrInjected
	})
	require.ErrorIs(t, err, tracked.ErrInjected)
	assert.Equal(t, []int{1, 2}, v.Slice())
	require.NoError(t, v.Validate())
}
