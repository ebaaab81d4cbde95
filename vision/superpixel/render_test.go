package superpixel

import (
	"image/color"
	"testing"

	"go.viam.com/test"
)

func pixelAt(buf []byte, lm *LabelMap, x, y int) color.NRGBA {
	o := lm.Index(x, y) * 4
	return color.NRGBA{R: buf[o], G: buf[o+1], B: buf[o+2], A: buf[o+3]}
}

func TestRenderBoundariesSingleRegion(t *testing.T) {
	lm := labelMapOf(4,
		0, 0, 0, 0,
		0, 0, 0, 0,
		0, 0, 0, 0,
	)
	red := color.NRGBA{R: 255, A: 255}
	out := RenderBoundaries(lm, red)
	test.That(t, out, test.ShouldHaveLength, 4*3*4)
	for y := 0; y < lm.Height; y++ {
		for x := 0; x < lm.Width; x++ {
			border := x == 0 || y == 0 || x == lm.Width-1 || y == lm.Height-1
			if border {
				test.That(t, pixelAt(out, lm, x, y), test.ShouldResemble, red)
			} else {
				test.That(t, pixelAt(out, lm, x, y), test.ShouldResemble, color.NRGBA{})
			}
		}
	}
}

func TestRenderBoundariesBetweenRegions(t *testing.T) {
	lm := labelMapOf(5,
		0, 0, 0, 1, 1,
		0, 0, 0, 1, 1,
		0, 0, 0, 1, 1,
		0, 0, 0, 1, 1,
	)
	// Alpha in the highlight is ignored; boundaries are always opaque.
	out := RenderBoundaries(lm, color.NRGBA{G: 200, A: 10})
	green := color.NRGBA{G: 200, A: 255}

	test.That(t, lm.IsBoundary(1, 1), test.ShouldBeFalse)
	test.That(t, lm.IsBoundary(2, 1), test.ShouldBeTrue)
	test.That(t, lm.IsBoundary(3, 2), test.ShouldBeTrue)
	test.That(t, pixelAt(out, lm, 1, 1), test.ShouldResemble, color.NRGBA{})
	test.That(t, pixelAt(out, lm, 2, 1), test.ShouldResemble, green)
	test.That(t, pixelAt(out, lm, 3, 2), test.ShouldResemble, green)
	test.That(t, pixelAt(out, lm, 4, 2), test.ShouldResemble, green)
}

func TestRenderFill(t *testing.T) {
	lm := labelMapOf(3, 0, 3, Unassigned)
	out := RenderFill(lm)
	test.That(t, pixelAt(out, lm, 0, 0), test.ShouldResemble, color.NRGBA{A: 90})
	test.That(t, pixelAt(out, lm, 1, 0), test.ShouldResemble, color.NRGBA{R: 15, G: 141, B: 9, A: 90})
	test.That(t, pixelAt(out, lm, 2, 0), test.ShouldResemble, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	test.That(t, FillColor(3), test.ShouldResemble, color.NRGBA{R: 15, G: 141, B: 9, A: 90})
}
