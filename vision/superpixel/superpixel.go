// Package superpixel partitions an RGBA8 image into superpixels with SLIC (simple linear
// iterative clustering) in joint CIE-LAB and image space.
//
// The pipeline runs strictly forward: the pixel buffer becomes a PixelField, centroids are
// seeded on a regular grid, the Clusterer assigns pixels inside bounded windows, the
// connectivity pass makes every label one 4-connected region, and a renderer turns the labels
// into an overlay buffer. Every step is single threaded and deterministic.
package superpixel

import (
	"go.viam.com/slic/rimage"
)

// FeaturePoint is a pixel, or a centroid, in joint color and image space.
type FeaturePoint struct {
	L, A, B float32
	X, Y    float32
}

// PixelField is the dense row-major grid of feature points for an image.
type PixelField struct {
	Width, Height int
	Points        []FeaturePoint
}

// NewPixelField converts every pixel of an RGBA8 buffer to a FeaturePoint. Alpha is ignored.
// The caller must have checked that len(buf) == width*height*4.
func NewPixelField(buf []byte, width, height int, table *rimage.GammaTable) *PixelField {
	points := make([]FeaturePoint, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := y*width + x
			p := buf[i*rimage.BytesPerPixel : i*rimage.BytesPerPixel+3]
			l, a, b := rimage.ToLab(p[0], p[1], p[2], table)
			points[i] = FeaturePoint{L: l, A: a, B: b, X: float32(x), Y: float32(y)}
		}
	}
	return &PixelField{Width: width, Height: height, Points: points}
}

// Index returns the flat index of (x, y).
func (pf *PixelField) Index(x, y int) int {
	return y*pf.Width + x
}

// At returns the feature point at (x, y).
func (pf *PixelField) At(x, y int) FeaturePoint {
	return pf.Points[pf.Index(x, y)]
}

// Unassigned marks a pixel that carries no label.
const Unassigned int32 = -1

// LabelMap is a dense row-major grid of labels.
type LabelMap struct {
	Width, Height int
	Labels        []int32
}

// NewLabelMap returns a map with every pixel Unassigned.
func NewLabelMap(width, height int) *LabelMap {
	labels := make([]int32, width*height)
	for i := range labels {
		labels[i] = Unassigned
	}
	return &LabelMap{Width: width, Height: height, Labels: labels}
}

// Index returns the flat index of (x, y).
func (lm *LabelMap) Index(x, y int) int {
	return y*lm.Width + x
}

// At returns the label at (x, y).
func (lm *LabelMap) At(x, y int) int32 {
	return lm.Labels[lm.Index(x, y)]
}

// In reports whether (x, y) lies inside the map.
func (lm *LabelMap) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < lm.Width && y < lm.Height
}

// CountUnassigned returns how many pixels carry no label.
func (lm *LabelMap) CountUnassigned() int {
	n := 0
	for _, l := range lm.Labels {
		if l == Unassigned {
			n++
		}
	}
	return n
}

// 4-connected neighborhood, in the order left, up, right, down.
var (
	dx4 = [...]int{-1, 0, 1, 0}
	dy4 = [...]int{0, -1, 0, 1}
)
