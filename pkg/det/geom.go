package det

import (
	"github.com/chewxy/math32"
)

type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) Distance(b Point) float32 {
	return math32.Sqrt(float32((p.X-b.X)*(p.X-b.X) + (p.Y-b.Y)*(p.Y-b.Y)))
}

// Box is an axis-aligned rectangle around one detected object.
// (X1,Y1) is the top-left corner and (X2,Y2) the bottom-right corner, in pixel
// coordinates. We assume X2 >= X1 and Y2 >= Y1; a box with X2 == X1 or
// Y2 == Y1 is legal, and has zero area.
type Box struct {
	X1    int   `json:"x1"`
	Y1    int   `json:"y1"`
	X2    int   `json:"x2"`
	Y2    int   `json:"y2"`
	Class Class `json:"class"`
}

func MakeBox(x1, y1, x2, y2 int, class Class) Box {
	return Box{X1: x1, Y1: y1, X2: x2, Y2: y2, Class: class}
}

func (b Box) Width() int {
	return b.X2 - b.X1
}

func (b Box) Height() int {
	return b.Y2 - b.Y1
}

func (b Box) Area() int {
	return (b.X2 - b.X1) * (b.Y2 - b.Y1)
}

func (b Box) Center() Point {
	return Point{
		X: (b.X1 + b.X2) / 2,
		Y: (b.Y1 + b.Y2) / 2,
	}
}

func (b *Box) Offset(dx, dy int) {
	b.X1 += dx
	b.Y1 += dy
	b.X2 += dx
	b.Y2 += dy
}

// Intersects is true if the boxes overlap with positive area.
// Boxes that merely touch along an edge do not intersect.
func (b Box) Intersects(c Box) bool {
	return max(b.X1, c.X1) < min(b.X2, c.X2) && max(b.Y1, c.Y1) < min(b.Y2, c.Y2)
}

// Intersection returns the overlapping region of b and c, keeping b's class.
// If the boxes are disjoint, the result is a zero-area box.
func (b Box) Intersection(c Box) Box {
	x1 := max(b.X1, c.X1)
	y1 := max(b.Y1, c.Y1)
	x2 := min(b.X2, c.X2)
	y2 := min(b.Y2, c.Y2)
	return Box{
		X1:    x1,
		Y1:    y1,
		X2:    max(x1, x2),
		Y2:    max(y1, y2),
		Class: b.Class,
	}
}

// Union returns the smallest box covering both b and c, keeping b's class
func (b Box) Union(c Box) Box {
	return Box{
		X1:    min(b.X1, c.X1),
		Y1:    min(b.Y1, c.Y1),
		X2:    max(b.X2, c.X2),
		Y2:    max(b.Y2, c.Y2),
		Class: b.Class,
	}
}

// Intersection over Union. Classes are ignored.
// Disjoint boxes return exactly 0, and a pair of zero-area boxes returns 0
// rather than NaN.
func (b Box) IOU(c Box) float32 {
	xLeft := max(b.X1, c.X1)
	yTop := max(b.Y1, c.Y1)
	xRight := min(b.X2, c.X2)
	yBottom := min(b.Y2, c.Y2)
	if xLeft > xRight || yBottom < yTop {
		return 0
	}
	intersection := (xRight - xLeft) * (yBottom - yTop)
	union := b.Area() + c.Area() - intersection
	if union <= 0 {
		return 0
	}
	return float32(intersection) / float32(union)
}
