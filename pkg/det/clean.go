package det

import (
	flatbush "github.com/bmharper/flatbush-go"
)

// Box count from which Clean builds a spatial index instead of testing
// every pair
const cleanIndexThreshold = 48

// CleanBoxes removes duplicate detections of the same object.
//
// Boxes are scanned in order, and each surviving box suppresses every later
// box whose IoU with it is >= threshold. A box that has been suppressed takes
// no further part in the scan, so it cannot suppress boxes after it. This is
// deliberately one-sided: given boxes A, B, C where A overlaps B and B
// overlaps C, but A does not overlap C, both A and C survive.
//
// Survivors keep their original order and coordinates. The input slice is
// not modified.
func CleanBoxes(boxes []Box, threshold float32) []Box {
	keep := make([]bool, len(boxes))
	for i := range keep {
		keep[i] = true
	}
	if threshold > 0 && len(boxes) >= cleanIndexThreshold {
		suppressIndexed(boxes, threshold, keep)
	} else {
		suppress(boxes, threshold, keep)
	}
	result := make([]Box, 0, len(boxes))
	for i, b := range boxes {
		if keep[i] {
			result = append(result, b)
		}
	}
	return result
}

// Clean removes duplicate boxes from the frame, in place
func (f *Frame) Clean(threshold float32) {
	f.Boxes = CleanBoxes(f.Boxes, threshold)
}

// Plain O(N^2) scan
func suppress(boxes []Box, threshold float32, keep []bool) {
	for i := 0; i < len(boxes); i++ {
		if !keep[i] {
			continue
		}
		for j := i + 1; j < len(boxes); j++ {
			if !keep[j] {
				continue
			}
			if boxes[i].IOU(boxes[j]) >= threshold {
				keep[j] = false
			}
		}
	}
}

// Same scan, but using a spatial index to find candidate pairs, so that large
// frames don't cost us O(N^2) IoU tests.
// Only valid for threshold > 0: suppression then requires an overlap of
// positive area, and the index returns every overlapping pair, so the
// survivors are identical to the plain scan's.
func suppressIndexed(boxes []Box, threshold float32, keep []bool) {
	fb := flatbush.NewFlatbush[int32]()
	fb.Reserve(len(boxes))
	for _, b := range boxes {
		fb.Add(int32(b.X1), int32(b.Y1), int32(b.X2), int32(b.Y2))
	}
	fb.Finish()

	candidates := []int{}
	for i := 0; i < len(boxes); i++ {
		if !keep[i] {
			continue
		}
		b := boxes[i]
		candidates = fb.SearchFast(int32(b.X1), int32(b.Y1), int32(b.X2), int32(b.Y2), candidates)
		for _, j := range candidates {
			if j <= i || !keep[j] {
				continue
			}
			if b.IOU(boxes[j]) >= threshold {
				keep[j] = false
			}
		}
	}
}
