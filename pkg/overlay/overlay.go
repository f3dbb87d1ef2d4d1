// Package overlay draws detection boxes onto an image, for debugging and for
// the demo CLI. It is a rendering aid, not an image codec.
package overlay

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/cyclopcam/detpost/pkg/det"
	"github.com/cyclopcam/detpost/pkg/gen"
	"github.com/cyclopcam/detpost/pkg/pixel"
)

type Options struct {
	LineWidth float64 // Stroke width in pixels. Zero means 2.
	Labels    bool    // Draw the class name above each box
}

type rgb struct {
	r, g, b int
}

var classColors = map[det.Class]rgb{
	det.ClassFace: {0, 255, 0},
	det.ClassGun:  {255, 0, 0},
	det.ClassMask: {255, 200, 0},
}

var defaultColor = rgb{255, 255, 255}

// Draw strokes a class-colored rectangle over the image for every box, in
// place. Boxes are clamped to the image bounds. The image must be RGB.
func Draw(img *pixel.Image, boxes []det.Box, opts *Options) error {
	if err := img.Validate(); err != nil {
		return err
	}
	if img.Format != pixel.FormatRGB {
		return pixel.ErrFormat
	}
	if opts == nil {
		opts = &Options{}
	}
	lineWidth := opts.LineWidth
	if lineWidth == 0 {
		lineWidth = 2
	}

	rgba := toRGBA(img)
	dc := gg.NewContextForRGBA(rgba)
	dc.SetLineWidth(lineWidth)
	if opts.Labels {
		dc.SetFontFace(basicfont.Face7x13)
	}

	for _, b := range boxes {
		x1 := gen.Clamp(b.X1, 0, img.Width)
		y1 := gen.Clamp(b.Y1, 0, img.Height)
		x2 := gen.Clamp(b.X2, 0, img.Width)
		y2 := gen.Clamp(b.Y2, 0, img.Height)
		if x2 <= x1 || y2 <= y1 {
			continue
		}
		col, ok := classColors[b.Class]
		if !ok {
			col = defaultColor
		}
		dc.SetRGB255(col.r, col.g, col.b)
		dc.DrawRectangle(float64(x1), float64(y1), float64(x2-x1), float64(y2-y1))
		dc.Stroke()
		if opts.Labels {
			// Above the box if there's room, otherwise inside it
			ty := y1 - 3
			if ty < basicfont.Face7x13.Ascent {
				ty = y1 + basicfont.Face7x13.Ascent + 2
			}
			dc.DrawString(b.Class.String(), float64(x1+2), float64(ty))
		}
	}

	fromRGBA(rgba, img)
	return nil
}

func toRGBA(im *pixel.Image) *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, im.Width, im.Height))
	for y := 0; y < im.Height; y++ {
		src := im.Pixels[y*im.Stride():]
		dst := rgba.Pix[y*rgba.Stride:]
		for x := 0; x < im.Width; x++ {
			dst[x*4] = src[x*3]
			dst[x*4+1] = src[x*3+1]
			dst[x*4+2] = src[x*3+2]
			dst[x*4+3] = 255
		}
	}
	return rgba
}

func fromRGBA(rgba *image.RGBA, im *pixel.Image) {
	for y := 0; y < im.Height; y++ {
		src := rgba.Pix[y*rgba.Stride:]
		dst := im.Pixels[y*im.Stride():]
		for x := 0; x < im.Width; x++ {
			dst[x*3] = src[x*4]
			dst[x*3+1] = src[x*4+1]
			dst[x*3+2] = src[x*4+2]
		}
	}
}
