package pixel

import (
	"github.com/bmharper/cimg/v2"
)

// ToCImage wraps the image as a cimg.Image, sharing the same pixel buffer.
// Mutations through either view are visible in the other.
func (im *Image) ToCImage() (*cimg.Image, error) {
	if err := im.Validate(); err != nil {
		return nil, err
	}
	cf, ok := toCImgFormat(im.Format)
	if !ok {
		return nil, ErrFormat
	}
	return cimg.WrapImage(im.Width, im.Height, cf, im.Pixels), nil
}

// FromCImage borrows the pixels of a cimg.Image.
// The cimg image must be tightly packed (no row padding), and in a format that
// we model (GRAY, RGB, BGR). No pixels are copied.
func FromCImage(src *cimg.Image) (*Image, error) {
	f, ok := fromCImgFormat(src.Format)
	if !ok {
		return nil, ErrFormat
	}
	if src.Stride != src.Width*src.NChan() {
		return nil, ErrInvalidBuffer
	}
	return WrapImage(src.Width, src.Height, f, src.Pixels)
}

func toCImgFormat(f Format) (cimg.PixelFormat, bool) {
	switch f {
	case FormatGray:
		return cimg.PixelFormatGRAY, true
	case FormatRGB:
		return cimg.PixelFormatRGB, true
	case FormatBGR:
		return cimg.PixelFormatBGR, true
	}
	return 0, false
}

func fromCImgFormat(f cimg.PixelFormat) (Format, bool) {
	switch f {
	case cimg.PixelFormatGRAY:
		return FormatGray, true
	case cimg.PixelFormatRGB:
		return FormatRGB, true
	case cimg.PixelFormatBGR:
		return FormatBGR, true
	}
	return 0, false
}
