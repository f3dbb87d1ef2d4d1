package det

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanBoxes(t *testing.T) {
	boxes := []Box{
		MakeBox(0, 0, 4, 4, ClassFace),
		MakeBox(1, 1, 5, 5, ClassFace),
		MakeBox(5, 5, 9, 9, ClassFace),
	}
	// The first two boxes overlap with IoU 9/23, so the second is suppressed.
	// The third is clear of both.
	out := CleanBoxes(boxes, 0.3)
	require.Equal(t, []Box{boxes[0], boxes[2]}, out)
	require.Len(t, boxes, 3, "input must not be modified")
}

func TestCleanSuppressedCannotSuppress(t *testing.T) {
	a := MakeBox(0, 0, 4, 4, ClassFace)
	b := MakeBox(1, 1, 5, 5, ClassFace)
	c := MakeBox(4, 1, 8, 5, ClassFace)
	// a overlaps b, and b overlaps c, but a does not overlap c.
	// b is suppressed by a, so it never gets the chance to suppress c.
	out := CleanBoxes([]Box{a, b, c}, 0.1)
	require.Equal(t, []Box{a, c}, out)
}

func TestCleanThresholdInclusive(t *testing.T) {
	a := MakeBox(0, 0, 2, 2, ClassFace)
	b := MakeBox(1, 1, 3, 3, ClassFace)
	exact := a.IOU(b)
	require.Len(t, CleanBoxes([]Box{a, b}, exact), 1, "IoU equal to the threshold suppresses")
	require.Len(t, CleanBoxes([]Box{a, b}, 0.15), 2)
}

func TestCleanZeroThreshold(t *testing.T) {
	// IoU >= 0 holds for every pair, even disjoint ones, so only the first
	// box survives
	boxes := []Box{
		MakeBox(0, 0, 2, 2, ClassFace),
		MakeBox(100, 100, 102, 102, ClassGun),
		MakeBox(500, 0, 502, 2, ClassMask),
	}
	out := CleanBoxes(boxes, 0)
	require.Equal(t, []Box{boxes[0]}, out)
}

func TestCleanEmpty(t *testing.T) {
	require.Empty(t, CleanBoxes(nil, 0.5))
	single := []Box{MakeBox(0, 0, 2, 2, ClassFace)}
	require.Equal(t, single, CleanBoxes(single, 0.5))
}

func TestFrameClean(t *testing.T) {
	f := Frame{}
	f.AddBox(MakeBox(0, 0, 4, 4, ClassFace))
	f.AddBox(MakeBox(1, 1, 5, 5, ClassFace))
	f.Clean(0.3)
	require.Equal(t, []Box{MakeBox(0, 0, 4, 4, ClassFace)}, f.Boxes)
}

// Run the spatial index path against the plain scan on randomized frames.
// They must agree exactly.
func TestCleanIndexedMatchesPlain(t *testing.T) {
	allTrue := func(n int) []bool {
		keep := make([]bool, n)
		for i := range keep {
			keep[i] = true
		}
		return keep
	}
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		n := cleanIndexThreshold + rng.Intn(100)
		boxes := make([]Box, 0, n)
		for i := 0; i < n; i++ {
			x := rng.Intn(200)
			y := rng.Intn(200)
			w := 5 + rng.Intn(40)
			h := 5 + rng.Intn(40)
			boxes = append(boxes, MakeBox(x, y, x+w, y+h, Class(rng.Intn(len(AllClasses)))))
		}
		for _, threshold := range []float32{0.1, 0.3, 0.5, 0.9} {
			keepPlain := allTrue(n)
			keepIndexed := allTrue(n)
			suppress(boxes, threshold, keepPlain)
			suppressIndexed(boxes, threshold, keepIndexed)
			require.Equal(t, keepPlain, keepIndexed, "trial %v, threshold %v", trial, threshold)
		}
	}
}
