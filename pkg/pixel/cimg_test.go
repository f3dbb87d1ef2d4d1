package pixel

import (
	"testing"

	"github.com/bmharper/cimg/v2"
	"github.com/stretchr/testify/require"
)

func TestToCImage(t *testing.T) {
	img := NewImage(3, 2, FormatRGB)
	for i := range img.Pixels {
		img.Pixels[i] = byte(i)
	}
	ci, err := img.ToCImage()
	require.NoError(t, err)
	require.Equal(t, 3, ci.Width)
	require.Equal(t, 2, ci.Height)
	require.Equal(t, cimg.PixelFormatRGB, ci.Format)

	// Wrapping must not copy pixels
	ci.Pixels[0] = 250
	require.Equal(t, byte(250), img.Pixels[0])
}

func TestFromCImage(t *testing.T) {
	ci := cimg.NewImage(4, 4, cimg.PixelFormatRGB)
	ci.Pixels[5] = 123
	img, err := FromCImage(ci)
	require.NoError(t, err)
	require.Equal(t, FormatRGB, img.Format)
	require.Equal(t, byte(123), img.Pixels[5])

	// Same check in the other direction
	img.Pixels[0] = 7
	require.Equal(t, byte(7), ci.Pixels[0])
}

func TestCImageRoundTrip(t *testing.T) {
	img := NewImage(2, 2, FormatBGR)
	ci, err := img.ToCImage()
	require.NoError(t, err)
	back, err := FromCImage(ci)
	require.NoError(t, err)
	require.Equal(t, img.Width, back.Width)
	require.Equal(t, img.Height, back.Height)
	require.Equal(t, img.Format, back.Format)
}
