package superpixel

import (
	"math"
)

// SpacingTolerance is the largest accepted gap between the segment count a spacing yields and
// the requested count.
const SpacingTolerance = 1e-4

const maxSpacingIterations = 200

// SolveSpacing finds the grid step S for which (height/S)*(width/S) is n, by bisection on
// [1, max(width, height)]. The estimate falls monotonically with S, so the search converges;
// it is still capped at a fixed number of halvings.
func SolveSpacing(width, height, n int) float64 {
	w, h, target := float64(width), float64(height), float64(n)
	lower, upper := 1.0, math.Max(w, h)
	mid := lower
	for i := 0; i < maxSpacingIterations; i++ {
		mid = (lower + upper) / 2
		diff := target - (h/mid)*(w/mid)
		if math.Abs(diff) < SpacingTolerance {
			return mid
		}
		if diff > 0 {
			upper = mid
		} else {
			lower = mid
		}
	}
	return mid
}

// InitCentroids seeds n centroids by walking the image in steps of spacing, starting half a
// step in and wrapping at the right edge onto the next grid row. Each centroid is a copy of
// the feature point it lands on; indices follow the walk, which is raster order.
func InitCentroids(field *PixelField, n int, spacing float64) []FeaturePoint {
	w := float64(field.Width)
	centroids := make([]FeaturePoint, n)
	for i := range centroids {
		p := float64(i)*spacing + spacing/2
		x := int(math.Floor(math.Mod(p, w)))
		y := int(math.Floor(math.Floor(p/w) * spacing))
		x = min(max(x, 0), field.Width-1)
		y = min(max(y, 0), field.Height-1)
		centroids[i] = field.At(x, y)
	}
	return centroids
}
