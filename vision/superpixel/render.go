package superpixel

import (
	"image/color"

	"go.viam.com/slic/rimage"
)

// IsBoundary reports whether (x, y) sits on a region edge: some 4-neighbor is outside the map
// or carries another label.
func (lm *LabelMap) IsBoundary(x, y int) bool {
	label := lm.At(x, y)
	for n := 0; n < 4; n++ {
		nx, ny := x+dx4[n], y+dy4[n]
		if !lm.In(nx, ny) || lm.At(nx, ny) != label {
			return true
		}
	}
	return false
}

// RenderBoundaries returns an RGBA8 overlay with boundary pixels in the highlight color, fully
// opaque, and every other pixel transparent.
func RenderBoundaries(labels *LabelMap, highlight color.NRGBA) []byte {
	out := make([]byte, len(labels.Labels)*rimage.BytesPerPixel)
	for y := 0; y < labels.Height; y++ {
		for x := 0; x < labels.Width; x++ {
			if !labels.IsBoundary(x, y) {
				continue
			}
			o := labels.Index(x, y) * rimage.BytesPerPixel
			out[o], out[o+1], out[o+2], out[o+3] = highlight.R, highlight.G, highlight.B, 255
		}
	}
	return out
}

// fillAlpha is the opacity of the pseudo-color fill.
const fillAlpha = 90

// FillColor is the debug pseudo-color of a label. Unassigned is opaque white.
func FillColor(label int32) color.NRGBA {
	if label == Unassigned {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	l := int(label)
	return color.NRGBA{
		R: uint8(l * 90 % 255),
		G: uint8(l * 47 % 255),
		B: uint8(l * 173 % 255),
		A: fillAlpha,
	}
}

// RenderFill paints every region with its FillColor. Meant for debugging.
func RenderFill(labels *LabelMap) []byte {
	out := make([]byte, len(labels.Labels)*rimage.BytesPerPixel)
	for i, label := range labels.Labels {
		c := FillColor(label)
		o := i * rimage.BytesPerPixel
		out[o], out[o+1], out[o+2], out[o+3] = c.R, c.G, c.B, c.A
	}
	return out
}
