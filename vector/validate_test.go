package vector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestValidate_ReportsEveryViolation(t *testing.T) {
	v := New[string]()
	require.NoError(t, v.Reserve(4))
	require.NoError(t, v.PushBack("a"))
	require.NoError(t, v.Validate())

	// leave values behind in raw slots
	*v.storage.At(2) = "stale"
	*v.storage.At(3) = "stale"

	err := v.Validate()
	require.ErrorIs(t, err, ErrInvariant)
	assert.Len(t, multierr.Errors(err), 2)
}

func TestValidate_SizeBeyondCapacity(t *testing.T) {
	v := New[int]()
	v.size = 3
	err := v.Validate()
	require.ErrorIs(t, err, ErrInvariant)
	assert.Contains(t, err.Error(), "exceeds capacity")
}
