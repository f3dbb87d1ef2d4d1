// Package pixel holds our in-memory image type: a borrowed view over an
// externally-owned pixel buffer, with just enough format awareness to do
// in-place channel reordering.
package pixel

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidBuffer = errors.New("Pixel buffer size does not match width*height*channels")
var ErrFormat = errors.New("Image is not in the expected pixel format")

// Format is the pixel format of an image buffer.
// The numeric values are stable; they appear in serialized frames.
type Format int

const (
	FormatGray Format = 0 // 1 channel
	FormatRGB  Format = 1 // 3 channels, red first
	FormatBGR  Format = 2 // 3 channels, blue first
)

// Channels returns the number of bytes per pixel, or 0 for an invalid format
func (f Format) Channels() int {
	switch f {
	case FormatGray:
		return 1
	case FormatRGB, FormatBGR:
		return 3
	}
	return 0
}

func (f Format) String() string {
	switch f {
	case FormatGray:
		return "GRAY"
	case FormatRGB:
		return "RGB"
	case FormatBGR:
		return "BGR"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "GRAY":
		return FormatGray, nil
	case "RGB":
		return FormatRGB, nil
	case "BGR":
		return FormatBGR, nil
	}
	return 0, fmt.Errorf("Unknown pixel format '%v'. Valid values are 'GRAY', 'RGB', 'BGR'", s)
}
