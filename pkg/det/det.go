// Package det post-processes object detection results.
// It knows nothing about how the detections were produced; it deals with the
// boxes after the fact: measuring overlap, suppressing duplicates within a
// frame, and merging the detections of paired frames.
package det

const DefaultIoUThreshold = 0.45
