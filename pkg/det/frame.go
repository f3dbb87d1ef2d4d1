package det

import (
	"github.com/cyclopcam/detpost/pkg/gen"
	"github.com/cyclopcam/detpost/pkg/pixel"
)

// Frame is one image and the detection boxes that belong to it
type Frame struct {
	Image pixel.Image `json:"image"`
	Boxes []Box       `json:"boxes"`
}

func (f *Frame) AddBox(b Box) {
	f.Boxes = append(f.Boxes, b)
}

// Clone returns a frame with its own copy of the box list.
// The pixel buffer is shared with the original, not copied.
func (f Frame) Clone() Frame {
	return Frame{
		Image: f.Image,
		Boxes: gen.CopySlice(f.Boxes),
	}
}
