package gen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCopySlice(t *testing.T) {
	a := []int{1, 2, 3}
	b := CopySlice(a)
	require.Equal(t, a, b)

	// The copy must not alias the original
	b[0] = 99
	require.Equal(t, 1, a[0])

	require.Empty(t, CopySlice[int](nil))
}

func TestClamp(t *testing.T) {
	require.Equal(t, 5, Clamp(3, 5, 10))
	require.Equal(t, 7, Clamp(7, 5, 10))
	require.Equal(t, 10, Clamp(12, 5, 10))
	require.Equal(t, float32(0.5), Clamp(float32(0.5), 0, 1))
}
