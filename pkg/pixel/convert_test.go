package pixel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRGBToBGR(t *testing.T) {
	// 2x2 RGB image: red, green, blue, white
	pixels := []byte{
		255, 0, 0, 0, 255, 0,
		0, 0, 255, 255, 255, 255,
	}
	img, err := WrapImage(2, 2, FormatRGB, pixels)
	require.NoError(t, err)

	require.NoError(t, img.RGBToBGR())
	require.Equal(t, FormatBGR, img.Format)
	expected := []byte{
		0, 0, 255, 0, 255, 0,
		255, 0, 0, 255, 255, 255,
	}
	require.Equal(t, expected, pixels)

	// The image is BGR now, so a second conversion must refuse,
	// and must leave the buffer alone
	err = img.RGBToBGR()
	require.ErrorIs(t, err, ErrFormat)
	require.Equal(t, FormatBGR, img.Format)
	require.Equal(t, expected, pixels)
}

func TestBGRToRGBRoundTrip(t *testing.T) {
	original := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	pixels := make([]byte, len(original))
	copy(pixels, original)

	img, err := WrapImage(3, 1, FormatRGB, pixels)
	require.NoError(t, err)

	require.NoError(t, img.RGBToBGR())
	require.Equal(t, []byte{3, 2, 1, 6, 5, 4, 9, 8, 7}, pixels)

	require.NoError(t, img.BGRToRGB())
	require.Equal(t, FormatRGB, img.Format)
	require.Equal(t, original, pixels)
}

func TestConvertGrayRefused(t *testing.T) {
	img, err := WrapImage(2, 2, FormatGray, make([]byte, 4))
	require.NoError(t, err)
	require.ErrorIs(t, img.RGBToBGR(), ErrFormat)
	require.ErrorIs(t, img.BGRToRGB(), ErrFormat)
}

func TestConvertBadBuffer(t *testing.T) {
	// A shrunken buffer must be caught before we touch any pixels
	img, err := WrapImage(2, 2, FormatRGB, make([]byte, 12))
	require.NoError(t, err)
	img.Pixels = img.Pixels[:9]
	require.ErrorIs(t, img.RGBToBGR(), ErrInvalidBuffer)
	require.Equal(t, FormatRGB, img.Format)
}
