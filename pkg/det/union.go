package det

// UnionFrames merges the detections of two frames that describe the same
// image (we trust the caller on that; it is not verified).
//
// The result starts as a copy of f1. Each box of f2, in order, is fused into
// the first result box it overlaps with IoU >= threshold, or appended if
// there is none. Fusing replaces the result box with the bounding union of
// the pair, keeping the result box's class. Fused boxes keep growing, so a
// later f2 box can match a result box that it would not have matched
// originally.
//
// The result reuses f1's image. Neither input is modified, and the result is
// not deduplicated (use Clean for that).
func UnionFrames(f1, f2 Frame, threshold float32) Frame {
	out := f1.Clone()
	for _, b2 := range f2.Boxes {
		fused := false
		for i := range out.Boxes {
			if out.Boxes[i].IOU(b2) >= threshold {
				out.Boxes[i] = out.Boxes[i].Union(b2)
				fused = true
				break
			}
		}
		if !fused {
			out.Boxes = append(out.Boxes, b2)
		}
	}
	return out
}
