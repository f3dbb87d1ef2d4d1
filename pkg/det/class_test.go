package det

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClass(t *testing.T) {
	require.Equal(t, "face", ClassFace.String())
	require.Equal(t, "gun", ClassGun.String())
	require.Equal(t, "mask", ClassMask.String())
	require.Equal(t, "Class(7)", Class(7).String())

	c, err := ParseClass("GUN")
	require.NoError(t, err)
	require.Equal(t, ClassGun, c)
	_, err = ParseClass("bicycle")
	require.Error(t, err)

	require.Len(t, AllClasses, len(ClassNames))
}
