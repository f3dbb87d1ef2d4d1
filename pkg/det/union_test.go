package det

import (
	"testing"

	"github.com/cyclopcam/detpost/pkg/pixel"
	"github.com/stretchr/testify/require"
)

func TestUnionFrames(t *testing.T) {
	f1 := Frame{}
	f1.AddBox(MakeBox(0, 0, 4, 4, ClassFace))
	f1.AddBox(MakeBox(5, 5, 9, 9, ClassGun))
	f2 := Frame{}
	f2.AddBox(MakeBox(2, 2, 6, 6, ClassMask))
	f2.AddBox(MakeBox(10, 10, 14, 14, ClassMask))

	u := UnionFrames(f1, f2, 0.1)
	require.Equal(t, []Box{
		MakeBox(0, 0, 6, 6, ClassFace),
		MakeBox(5, 5, 9, 9, ClassGun),
		MakeBox(10, 10, 14, 14, ClassMask),
	}, u.Boxes)

	// Inputs must be untouched
	require.Equal(t, MakeBox(0, 0, 4, 4, ClassFace), f1.Boxes[0])
	require.Equal(t, MakeBox(2, 2, 6, 6, ClassMask), f2.Boxes[0])
}

func TestUnionFirstMatchWins(t *testing.T) {
	f1 := Frame{Boxes: []Box{
		MakeBox(0, 0, 10, 10, ClassFace),
		MakeBox(4, 4, 14, 14, ClassGun),
	}}
	f2 := Frame{Boxes: []Box{MakeBox(5, 5, 13, 13, ClassMask)}}
	// The second f1 box overlaps far more, but the first box above the
	// threshold takes the fuse
	u := UnionFrames(f1, f2, 0.1)
	require.Equal(t, []Box{
		MakeBox(0, 0, 13, 13, ClassFace),
		MakeBox(4, 4, 14, 14, ClassGun),
	}, u.Boxes)
}

func TestUnionGrowthCompounds(t *testing.T) {
	f1 := Frame{Boxes: []Box{MakeBox(0, 0, 4, 4, ClassFace)}}
	f2 := Frame{Boxes: []Box{
		MakeBox(1, 1, 9, 9, ClassMask),
		MakeBox(5, 5, 10, 10, ClassMask),
	}}
	// The second f2 box misses f1's original box entirely, but by the time we
	// reach it, the result box has grown to (0,0,9,9), which it does overlap.
	// So everything collapses into one box.
	u := UnionFrames(f1, f2, 0.1)
	require.Equal(t, []Box{MakeBox(0, 0, 10, 10, ClassFace)}, u.Boxes)
}

func TestUnionEmptyF1(t *testing.T) {
	f2 := Frame{Boxes: []Box{
		MakeBox(0, 0, 4, 4, ClassGun),
		MakeBox(1, 1, 5, 5, ClassFace),
	}}
	// Boxes appended from f2 are themselves fuse targets for later f2 boxes
	u := UnionFrames(Frame{}, f2, 0.3)
	require.Equal(t, []Box{MakeBox(0, 0, 5, 5, ClassGun)}, u.Boxes)
}

func TestUnionNoOverlap(t *testing.T) {
	f1 := Frame{Boxes: []Box{MakeBox(0, 0, 2, 2, ClassFace)}}
	f2 := Frame{Boxes: []Box{MakeBox(10, 10, 12, 12, ClassGun)}}
	u := UnionFrames(f1, f2, 0.1)
	require.Equal(t, []Box{f1.Boxes[0], f2.Boxes[0]}, u.Boxes)
}

func TestUnionKeepsImage(t *testing.T) {
	img := pixel.NewImage(2, 2, pixel.FormatRGB)
	f1 := Frame{Image: *img}
	u := UnionFrames(f1, Frame{}, 0.5)
	require.Equal(t, f1.Image.Width, u.Image.Width)
	u.Image.Pixels[0] = 99
	require.Equal(t, byte(99), f1.Image.Pixels[0], "result shares f1's pixel buffer")
}
