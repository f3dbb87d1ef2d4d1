package overlay

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cyclopcam/detpost/pkg/det"
	"github.com/cyclopcam/detpost/pkg/pixel"
)

func countNonZero(pixels []byte) int {
	n := 0
	for _, p := range pixels {
		if p != 0 {
			n++
		}
	}
	return n
}

func TestDraw(t *testing.T) {
	img := pixel.NewImage(32, 32, pixel.FormatRGB)
	boxes := []det.Box{det.MakeBox(4, 4, 20, 20, det.ClassFace)}
	require.NoError(t, Draw(img, boxes, nil))
	require.Greater(t, countNonZero(img.Pixels), 0, "stroking a box must touch some pixels")
}

func TestDrawWithLabels(t *testing.T) {
	img := pixel.NewImage(64, 64, pixel.FormatRGB)
	boxes := []det.Box{
		det.MakeBox(2, 2, 30, 30, det.ClassGun),
		det.MakeBox(32, 32, 62, 62, det.ClassMask),
	}
	require.NoError(t, Draw(img, boxes, &Options{LineWidth: 1, Labels: true}))
	require.Greater(t, countNonZero(img.Pixels), 0)
}

func TestDrawClampsToBounds(t *testing.T) {
	img := pixel.NewImage(16, 16, pixel.FormatRGB)
	boxes := []det.Box{
		det.MakeBox(-10, -10, 8, 8, det.ClassFace),
		det.MakeBox(12, 12, 100, 100, det.ClassGun),
		det.MakeBox(200, 200, 300, 300, det.ClassMask), // fully outside, skipped
	}
	require.NoError(t, Draw(img, boxes, nil))
}

func TestDrawRejectsNonRGB(t *testing.T) {
	gray := pixel.NewImage(8, 8, pixel.FormatGray)
	require.ErrorIs(t, Draw(gray, nil, nil), pixel.ErrFormat)

	bgr := pixel.NewImage(8, 8, pixel.FormatBGR)
	require.ErrorIs(t, Draw(bgr, nil, nil), pixel.ErrFormat)
}
