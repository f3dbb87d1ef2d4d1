package pixel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapImage(t *testing.T) {
	img, err := WrapImage(4, 3, FormatRGB, make([]byte, 4*3*3))
	require.NoError(t, err)
	require.Equal(t, 4, img.Width)
	require.Equal(t, 3, img.Height)
	require.Equal(t, 3, img.NChan())
	require.Equal(t, 12, img.Stride())

	gray, err := WrapImage(4, 3, FormatGray, make([]byte, 4*3))
	require.NoError(t, err)
	require.Equal(t, 1, gray.NChan())

	// buffer too small
	_, err = WrapImage(4, 3, FormatRGB, make([]byte, 4*3*3-1))
	require.ErrorIs(t, err, ErrInvalidBuffer)

	// buffer too large
	_, err = WrapImage(4, 3, FormatRGB, make([]byte, 4*3*3+1))
	require.ErrorIs(t, err, ErrInvalidBuffer)

	// negative dimensions
	_, err = WrapImage(-1, 3, FormatRGB, nil)
	require.ErrorIs(t, err, ErrInvalidBuffer)

	// bogus format
	_, err = WrapImage(4, 3, Format(99), make([]byte, 4*3*3))
	require.ErrorIs(t, err, ErrFormat)
}

func TestImageClone(t *testing.T) {
	img := NewImage(2, 2, FormatRGB)
	img.Pixels[0] = 200
	dup := img.Clone()
	dup.Pixels[0] = 17
	require.Equal(t, byte(200), img.Pixels[0])
	require.Equal(t, byte(17), dup.Pixels[0])
	require.Equal(t, img.Width, dup.Width)
	require.Equal(t, img.Format, dup.Format)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("rgb")
	require.NoError(t, err)
	require.Equal(t, FormatRGB, f)
	f, err = ParseFormat("BGR")
	require.NoError(t, err)
	require.Equal(t, FormatBGR, f)
	f, err = ParseFormat("Gray")
	require.NoError(t, err)
	require.Equal(t, FormatGray, f)
	_, err = ParseFormat("cmyk")
	require.Error(t, err)
}

func TestFormatString(t *testing.T) {
	require.Equal(t, "RGB", FormatRGB.String())
	require.Equal(t, "BGR", FormatBGR.String())
	require.Equal(t, "GRAY", FormatGray.String())
}
