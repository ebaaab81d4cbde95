package superpixel

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/slic/rimage"
)

// stripedBuffer paints vertical bands of alternating colors, each bandWidth pixels wide.
func stripedBuffer(width, height, bandWidth int) []byte {
	buf := make([]byte, width*height*rimage.BytesPerPixel)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			o := (y*width + x) * rimage.BytesPerPixel
			if (x/bandWidth)%2 == 0 {
				buf[o], buf[o+1], buf[o+2] = 200, 30, 30
			} else {
				buf[o], buf[o+1], buf[o+2] = 20, 60, 220
			}
			buf[o+3] = 255
		}
	}
	return buf
}

func TestDistance(t *testing.T) {
	p := FeaturePoint{L: 10, A: -2, B: 3, X: 4, Y: 5}
	c := FeaturePoint{L: 7, A: 1, B: 3, X: 1, Y: 9}
	// color 3+3+0, spatial 3+4
	test.That(t, Distance(p, c, 0.5), test.ShouldAlmostEqual, 6+0.5*7, 1e-6)
	test.That(t, Distance(p, p, 0.5), test.ShouldEqual, float32(0))
	test.That(t, Distance(p, c, 0.5), test.ShouldEqual, Distance(c, p, 0.5))
}

func TestClusterLabelRange(t *testing.T) {
	const width, height, k = 40, 30, 12
	cfg := NewConfig(k, 10)
	field := NewPixelField(stripedBuffer(width, height, 7), width, height, rimage.DefaultGammaTable())
	spacing := SolveSpacing(width, height, k)
	labels := Cluster(field, InitCentroids(field, k, spacing), spacing, cfg)

	test.That(t, labels.Width, test.ShouldEqual, width)
	test.That(t, labels.Height, test.ShouldEqual, height)
	test.That(t, labels.Labels, test.ShouldHaveLength, width*height)
	for _, l := range labels.Labels {
		test.That(t, l, test.ShouldBeGreaterThanOrEqualTo, Unassigned)
		test.That(t, l, test.ShouldBeLessThan, k)
	}
	test.That(t, labels.CountUnassigned(), test.ShouldEqual, 0)

	t.Run("deterministic", func(t *testing.T) {
		again := Cluster(field, InitCentroids(field, k, spacing), spacing, cfg)
		test.That(t, again.Labels, test.ShouldResemble, labels.Labels)
	})
}

func TestClustererDegenerateCentroid(t *testing.T) {
	field := NewPixelField(uniformBuffer(4, 4, 90, 140, 30), 4, 4, rimage.DefaultGammaTable())
	seed := field.At(1, 1)
	// Identical centroids tie on every pixel; the later one never wins a strict comparison.
	c := NewClusterer(field, []FeaturePoint{seed, seed}, 4, NewConfig(2, 10))

	report := c.Iterate()
	test.That(t, report.Degenerate, test.ShouldResemble, []int{1})
	test.That(t, c.Centroids()[1], test.ShouldResemble, seed)
	for _, l := range c.Labels().Labels {
		test.That(t, l, test.ShouldEqual, int32(0))
	}
	// Centroid 0 moved to the mean of the whole image.
	test.That(t, c.Centroids()[0].X, test.ShouldAlmostEqual, 1.5, 1e-6)
	test.That(t, c.Centroids()[0].Y, test.ShouldAlmostEqual, 1.5, 1e-6)
}

func TestClustererCoverageGap(t *testing.T) {
	field := NewPixelField(uniformBuffer(4, 4, 90, 140, 30), 4, 4, rimage.DefaultGammaTable())
	cfg := NewConfig(1, 10)
	cfg.WindowBehind = 1
	cfg.WindowAhead = 1
	c := NewClusterer(field, []FeaturePoint{field.At(0, 0)}, 1, cfg)

	report := c.Iterate()
	test.That(t, report.Degenerate, test.ShouldBeEmpty)
	test.That(t, c.Labels().At(0, 0), test.ShouldEqual, int32(0))
	test.That(t, c.Labels().CountUnassigned(), test.ShouldEqual, 15)
}

func TestClustererWindow(t *testing.T) {
	field := NewPixelField(uniformBuffer(10, 10, 0, 0, 0), 10, 10, rimage.DefaultGammaTable())
	c := NewClusterer(field, nil, 2, NewConfig(1, 10))

	lo, hi := c.window(5, 10)
	test.That(t, lo, test.ShouldEqual, 1)
	test.That(t, hi, test.ShouldEqual, 8)

	lo, hi = c.window(0.5, 10)
	test.That(t, lo, test.ShouldEqual, 0)
	test.That(t, hi, test.ShouldEqual, 4)

	lo, hi = c.window(9, 10)
	test.That(t, lo, test.ShouldEqual, 5)
	test.That(t, hi, test.ShouldEqual, 10)
}
