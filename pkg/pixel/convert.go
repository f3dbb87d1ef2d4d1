package pixel

// RGBToBGR swaps the red and blue channel of every pixel, in place, and flips
// the declared format to BGR. The green channel and the pixel order are
// untouched, and nothing is allocated.
// Returns ErrFormat if the image is not RGB, or ErrInvalidBuffer if the buffer
// does not match the declared dimensions. The buffer is left alone on error.
func (im *Image) RGBToBGR() error {
	if im.Format != FormatRGB {
		return ErrFormat
	}
	if err := im.Validate(); err != nil {
		return err
	}
	swapChannels02(im.Pixels, im.Width*im.Height)
	im.Format = FormatBGR
	return nil
}

// BGRToRGB is the inverse of RGBToBGR: the same swap, with the opposite
// precondition. Converting there and back restores the original bytes.
func (im *Image) BGRToRGB() error {
	if im.Format != FormatBGR {
		return ErrFormat
	}
	if err := im.Validate(); err != nil {
		return err
	}
	swapChannels02(im.Pixels, im.Width*im.Height)
	im.Format = FormatRGB
	return nil
}

func swapChannels02(pixels []byte, npixels int) {
	for i := 0; i < npixels*3; i += 3 {
		pixels[i], pixels[i+2] = pixels[i+2], pixels[i]
	}
}
