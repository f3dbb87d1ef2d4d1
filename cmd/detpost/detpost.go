package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/akamensky/argparse"
	"github.com/bmharper/cimg/v2"
	"github.com/cyclopcam/detpost/pkg/det"
	"github.com/cyclopcam/detpost/pkg/overlay"
	"github.com/cyclopcam/detpost/pkg/pixel"
	"github.com/cyclopcam/logs"
)

func check(err error) {
	if err != nil {
		panic(err)
	}
}

func loadBoxes(filename string) ([]det.Box, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	boxes := []det.Box{}
	if err := json.Unmarshal(b, &boxes); err != nil {
		return nil, err
	}
	return boxes, nil
}

// Run the built-in sanity checks and return the number of failures
func runSelfTest() int {
	failures := 0
	report := func(name string, ok bool) {
		if ok {
			fmt.Printf("PASS %v\n", name)
		} else {
			fmt.Printf("FAIL %v\n", name)
			failures++
		}
	}

	img, err := pixel.WrapImage(2, 2, pixel.FormatRGB, []byte{255, 0, 0, 0, 255, 0, 0, 0, 255, 255, 255, 255})
	ok := err == nil && img.RGBToBGR() == nil &&
		bytes.Equal(img.Pixels, []byte{0, 0, 255, 0, 255, 0, 255, 0, 0, 255, 255, 255}) &&
		img.Format == pixel.FormatBGR
	report("rgb-to-bgr", ok)

	a := det.MakeBox(0, 0, 2, 2, det.ClassFace)
	b := det.MakeBox(1, 1, 3, 3, det.ClassFace)
	c := det.MakeBox(4, 4, 6, 6, det.ClassFace)
	report("iou", a.IOU(b) == float32(1)/float32(7) && a.IOU(c) == 0)

	cleaned := det.CleanBoxes([]det.Box{
		det.MakeBox(0, 0, 4, 4, det.ClassFace),
		det.MakeBox(1, 1, 5, 5, det.ClassFace),
		det.MakeBox(5, 5, 9, 9, det.ClassFace),
	}, 0.3)
	report("clean", len(cleaned) == 2)

	f1 := det.Frame{Boxes: []det.Box{det.MakeBox(0, 0, 4, 4, det.ClassFace), det.MakeBox(5, 5, 9, 9, det.ClassFace)}}
	f2 := det.Frame{Boxes: []det.Box{det.MakeBox(2, 2, 6, 6, det.ClassFace), det.MakeBox(10, 10, 14, 14, det.ClassFace)}}
	u := det.UnionFrames(f1, f2, 0.1)
	report("union", len(u.Boxes) == 3)

	return failures
}

func main() {
	parser := argparse.NewParser("detpost", "Post-process object detection boxes: merge, dedup, annotate")
	selftest := parser.Flag("", "selftest", &argparse.Options{Help: "Run the built-in self tests and exit"})
	input := parser.String("i", "input", &argparse.Options{Help: "Input image (JPEG/PNG)"})
	boxes1 := parser.String("b", "boxes", &argparse.Options{Help: "JSON file with detection boxes"})
	boxes2 := parser.String("", "boxes2", &argparse.Options{Help: "Second JSON box file, merged into the first"})
	threshold := parser.Float("t", "threshold", &argparse.Options{Help: "IoU threshold for merging and cleaning", Default: float64(det.DefaultIoUThreshold)})
	clean := parser.Flag("c", "clean", &argparse.Options{Help: "Remove duplicate boxes"})
	output := parser.String("o", "output", &argparse.Options{Help: "Write an annotated copy of the input image (requires -i)"})
	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(1)
	}

	if *selftest {
		if runSelfTest() != 0 {
			os.Exit(1)
		}
		return
	}

	logger, _ := logs.NewLog()

	frame := det.Frame{}
	if *boxes1 != "" {
		frame.Boxes, err = loadBoxes(*boxes1)
		check(err)
	}
	if *boxes2 != "" {
		b2, err := loadBoxes(*boxes2)
		check(err)
		frame = det.UnionFrames(frame, det.Frame{Boxes: b2}, float32(*threshold))
		logger.Infof("Merged %v: %v boxes total", *boxes2, len(frame.Boxes))
	}
	if *clean {
		before := len(frame.Boxes)
		frame.Clean(float32(*threshold))
		logger.Infof("Clean removed %v of %v boxes", before-len(frame.Boxes), before)
	}

	if *output != "" {
		if *input == "" {
			logger.Errorf("-o requires an input image (-i)")
			os.Exit(1)
		}
		src, err := cimg.ReadFile(*input)
		check(err)
		img, err := pixel.FromCImage(src.ToRGB())
		check(err)
		check(overlay.Draw(img, frame.Boxes, &overlay.Options{Labels: true}))
		annotated, err := img.ToCImage()
		check(err)
		check(annotated.WriteJPEG(*output, cimg.MakeCompressParams(cimg.Sampling444, 95, 0), 0644))
		logger.Infof("Wrote %v", *output)
	} else {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		check(encoder.Encode(frame.Boxes))
	}
}
