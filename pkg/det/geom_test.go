package det

import (
	"testing"
)

func TestIOU(t *testing.T) {
	a := MakeBox(0, 0, 2, 2, ClassFace)
	b := MakeBox(1, 1, 3, 3, ClassFace)
	if a.IOU(b) != float32(1)/float32(7) {
		t.Errorf("IOU is %v, not 1/7", a.IOU(b))
	}
	if a.IOU(b) != b.IOU(a) {
		t.Errorf("IOU is not symmetric")
	}
	if a.IOU(a) != 1 {
		t.Errorf("Self IOU is %v, not 1", a.IOU(a))
	}

	disjoint := MakeBox(4, 4, 6, 6, ClassFace)
	if a.IOU(disjoint) != 0 {
		t.Errorf("Disjoint IOU is %v, not 0", a.IOU(disjoint))
	}

	// Boxes that touch along an edge have zero overlap
	touching := MakeBox(2, 0, 4, 2, ClassFace)
	if a.IOU(touching) != 0 {
		t.Errorf("Touching IOU is %v, not 0", a.IOU(touching))
	}

	// A pair of zero-area boxes must yield 0, not NaN
	degenerate := MakeBox(3, 3, 3, 3, ClassFace)
	if degenerate.IOU(degenerate) != 0 {
		t.Errorf("Degenerate IOU is %v, not 0", degenerate.IOU(degenerate))
	}
}

func TestBoxGeometry(t *testing.T) {
	b := MakeBox(2, 3, 10, 15, ClassGun)
	if b.Width() != 8 || b.Height() != 12 || b.Area() != 96 {
		t.Errorf("Box dimensions wrong: %v x %v, area %v", b.Width(), b.Height(), b.Area())
	}
	if b.Center() != (Point{X: 6, Y: 9}) {
		t.Errorf("Center is %v", b.Center())
	}

	b.Offset(10, 20)
	if b != MakeBox(12, 23, 20, 35, ClassGun) {
		t.Errorf("Offset gave %v", b)
	}

	u := MakeBox(0, 0, 4, 4, ClassFace).Union(MakeBox(2, 2, 6, 6, ClassMask))
	if u != MakeBox(0, 0, 6, 6, ClassFace) {
		t.Errorf("Union gave %v", u)
	}

	in := MakeBox(0, 0, 4, 4, ClassFace).Intersection(MakeBox(2, 2, 6, 6, ClassMask))
	if in != MakeBox(2, 2, 4, 4, ClassFace) {
		t.Errorf("Intersection gave %v", in)
	}
	empty := MakeBox(0, 0, 2, 2, ClassFace).Intersection(MakeBox(5, 5, 7, 7, ClassFace))
	if empty.Area() != 0 {
		t.Errorf("Disjoint intersection has area %v", empty.Area())
	}

	if !MakeBox(0, 0, 4, 4, ClassFace).Intersects(MakeBox(3, 3, 6, 6, ClassFace)) {
		t.Errorf("Overlapping boxes must intersect")
	}
	if MakeBox(0, 0, 4, 4, ClassFace).Intersects(MakeBox(4, 0, 8, 4, ClassFace)) {
		t.Errorf("Edge-touching boxes must not intersect")
	}
}

func TestPointDistance(t *testing.T) {
	a := Point{X: 0, Y: 0}
	b := Point{X: 3, Y: 4}
	if a.Distance(b) != 5 {
		t.Errorf("Distance is %v, not 5", a.Distance(b))
	}
	if a.Distance(a) != 0 {
		t.Errorf("Distance to self is %v", a.Distance(a))
	}
}
