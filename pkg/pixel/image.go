package pixel

import "fmt"

// Image is a width x height pixel buffer with interleaved channels, row-major,
// no row padding. The buffer is typically owned by somebody else (a camera
// pipeline, a decoder); we only hold a view onto it, and the in-place
// operations in this package mutate it directly.
type Image struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format Format `json:"format"`
	Pixels []byte `json:"-"`
}

// WrapImage borrows an externally-owned pixel buffer.
// The buffer length must be exactly Width*Height*Channels, otherwise we return
// ErrInvalidBuffer. No pixels are copied.
func WrapImage(width, height int, format Format, pixels []byte) (*Image, error) {
	if format.Channels() == 0 {
		return nil, ErrFormat
	}
	if width < 0 || height < 0 || len(pixels) != width*height*format.Channels() {
		return nil, ErrInvalidBuffer
	}
	return &Image{
		Width:  width,
		Height: height,
		Format: format,
		Pixels: pixels,
	}, nil
}

// NewImage allocates a zeroed image.
// Panics if the format is invalid or the dimensions are negative; use WrapImage
// when validating untrusted inputs.
func NewImage(width, height int, format Format) *Image {
	if format.Channels() == 0 || width < 0 || height < 0 {
		panic(fmt.Sprintf("NewImage: invalid %vx%v %v", width, height, format))
	}
	return &Image{
		Width:  width,
		Height: height,
		Format: format,
		Pixels: make([]byte, width*height*format.Channels()),
	}
}

// NChan returns the number of channels (eg 3 for RGB)
func (im *Image) NChan() int {
	return im.Format.Channels()
}

// Stride returns the number of bytes per row
func (im *Image) Stride() int {
	return im.Width * im.NChan()
}

// Validate checks that the pixel buffer agrees with the declared geometry.
// Every operation that touches the buffer calls this first, so a mismatched
// buffer fails with ErrInvalidBuffer instead of reading out of bounds.
func (im *Image) Validate() error {
	if im.NChan() == 0 {
		return ErrFormat
	}
	if im.Width < 0 || im.Height < 0 || len(im.Pixels) != im.Width*im.Height*im.NChan() {
		return ErrInvalidBuffer
	}
	return nil
}

// Clone returns an image with its own copy of the pixels
func (im *Image) Clone() *Image {
	dst := &Image{
		Width:  im.Width,
		Height: im.Height,
		Format: im.Format,
		Pixels: make([]byte, len(im.Pixels)),
	}
	copy(dst.Pixels, im.Pixels)
	return dst
}
