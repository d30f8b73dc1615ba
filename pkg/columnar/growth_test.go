package columnar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/colframe/pkg/errors"
)

func TestNextCapacity(t *testing.T) {
	tests := []struct {
		current, required, expected int
	}{
		{0, 0, 0},
		{0, 1, 1},
		{1, 2, 2},
		{2, 3, 4},
		{4, 4, 4},
		{4, 5, 8},
		{0, 1000, 1024},
		{0, 1024, 1024},
		{3, 5, 8},
		{16, 3, 16},
		{8, -1, 8},
	}

	for _, test := range tests {
		got, err := NextCapacity(test.current, test.required)
		require.NoError(t, err)
		assert.Equal(t, test.expected, got, "NextCapacity(%d, %d)", test.current, test.required)
	}
}

func TestNextCapacityLimit(t *testing.T) {
	got, err := NextCapacity(0, MaxCapacity)
	require.NoError(t, err)
	assert.Equal(t, MaxCapacity, got)

	got, err = NextCapacity(16, MaxCapacity+1)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeResource))
	assert.Equal(t, 16, got)
}

func TestIsPowerOfTwo(t *testing.T) {
	for _, n := range []int{1, 2, 4, 1024, MaxCapacity} {
		assert.True(t, IsPowerOfTwo(n), "%d", n)
	}
	for _, n := range []int{-4, 0, 3, 6, 1023} {
		assert.False(t, IsPowerOfTwo(n), "%d", n)
	}
}
