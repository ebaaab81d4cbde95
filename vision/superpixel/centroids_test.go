package superpixel

import (
	"fmt"
	"math"
	"testing"

	"go.viam.com/test"

	"go.viam.com/slic/rimage"
)

func TestSolveSpacing(t *testing.T) {
	for _, tc := range []struct{ width, height, n int }{
		{640, 480, 100},
		{640, 480, 1},
		{4, 4, 2},
		{1, 1, 1},
		{10, 1, 10},
		{1, 10, 3},
		{100, 100, 10000},
		{37, 23, 7},
		{3, 5000, 400},
	} {
		t.Run(fmt.Sprintf("%dx%d/%d", tc.width, tc.height, tc.n), func(t *testing.T) {
			s := SolveSpacing(tc.width, tc.height, tc.n)
			test.That(t, s, test.ShouldBeGreaterThanOrEqualTo, 1)
			test.That(t, s, test.ShouldBeLessThanOrEqualTo, math.Max(float64(tc.width), float64(tc.height)))
			estimate := (float64(tc.height) / s) * (float64(tc.width) / s)
			test.That(t, math.Abs(float64(tc.n)-estimate), test.ShouldBeLessThan, SpacingTolerance)
		})
	}

	test.That(t, SolveSpacing(4, 4, 2), test.ShouldAlmostEqual, math.Sqrt(8), 1e-4)
}

func uniformBuffer(width, height int, r, g, b uint8) []byte {
	buf := make([]byte, width*height*rimage.BytesPerPixel)
	for i := 0; i < len(buf); i += rimage.BytesPerPixel {
		buf[i], buf[i+1], buf[i+2], buf[i+3] = r, g, b, 255
	}
	return buf
}

func TestInitCentroids(t *testing.T) {
	field := NewPixelField(uniformBuffer(4, 4, 128, 128, 128), 4, 4, rimage.DefaultGammaTable())
	spacing := SolveSpacing(4, 4, 2)
	centroids := InitCentroids(field, 2, spacing)
	test.That(t, centroids, test.ShouldHaveLength, 2)
	test.That(t, centroids[0].X, test.ShouldEqual, float32(1))
	test.That(t, centroids[0].Y, test.ShouldEqual, float32(0))
	test.That(t, centroids[1].X, test.ShouldEqual, float32(0))
	test.That(t, centroids[1].Y, test.ShouldEqual, float32(2))
	test.That(t, centroids[0].L, test.ShouldEqual, field.At(1, 0).L)

	t.Run("centroids are copies", func(t *testing.T) {
		centroids[0].L = -1
		test.That(t, field.At(1, 0).L, test.ShouldNotEqual, float32(-1))
	})

	t.Run("always inside the image", func(t *testing.T) {
		for _, tc := range []struct{ width, height, n int }{
			{1, 1, 1}, {7, 3, 21}, {13, 11, 5}, {50, 2, 33}, {2, 50, 33}, {9, 9, 80},
		} {
			field := NewPixelField(uniformBuffer(tc.width, tc.height, 10, 20, 30), tc.width, tc.height, rimage.DefaultGammaTable())
			centroids := InitCentroids(field, tc.n, SolveSpacing(tc.width, tc.height, tc.n))
			test.That(t, centroids, test.ShouldHaveLength, tc.n)
			for _, c := range centroids {
				test.That(t, c.X, test.ShouldBeGreaterThanOrEqualTo, 0)
				test.That(t, c.X, test.ShouldBeLessThan, tc.width)
				test.That(t, c.Y, test.ShouldBeGreaterThanOrEqualTo, 0)
				test.That(t, c.Y, test.ShouldBeLessThan, tc.height)
			}
		}
	})
}
