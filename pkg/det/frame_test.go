package det

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrameClone(t *testing.T) {
	f := Frame{}
	f.AddBox(MakeBox(0, 0, 2, 2, ClassFace))
	dup := f.Clone()
	dup.Boxes[0].X1 = 50
	dup.AddBox(MakeBox(3, 3, 4, 4, ClassGun))
	require.Equal(t, 0, f.Boxes[0].X1)
	require.Len(t, f.Boxes, 1)
	require.Len(t, dup.Boxes, 2)
}
