package io

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// DepthImage is the shared render target. Each pixel holds the hit
// distance of its ray, +Inf for a miss.
type DepthImage struct {
	Width  int
	Height int
	Depths []float64
}

func NewDepthImage(width, height int) *DepthImage {
	img := &DepthImage{
		Width:  width,
		Height: height,
		Depths: make([]float64, width*height),
	}
	for i := range img.Depths {
		img.Depths[i] = math.Inf(1)
	}
	return img
}

// Row returns the pixel slice of one scanline.
func (img *DepthImage) Row(y int) []float64 {
	return img.Depths[y*img.Width : (y+1)*img.Width]
}

// WritePGM dumps the image as a plain 8-bit PGM, nearest hits brightest
// and misses black.
func (img *DepthImage) WritePGM(w io.Writer) error {
	near, far := math.Inf(1), math.Inf(-1)
	for _, d := range img.Depths {
		if math.IsInf(d, 1) {
			continue
		}
		near = math.Min(near, d)
		far = math.Max(far, d)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P2\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return err
	}
	span := far - near
	for y := 0; y < img.Height; y++ {
		for x, d := range img.Row(y) {
			v := 0
			if !math.IsInf(d, 1) {
				if span > 0 {
					v = 255 - int(254*(d-near)/span)
				} else {
					v = 255
				}
			}
			if x > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(bw, "%d", v); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
