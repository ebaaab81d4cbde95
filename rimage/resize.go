package rimage

import (
	"image"

	"github.com/nfnt/resize"
)

// ResizeToFit scales img down so neither side exceeds maxDim, keeping the aspect ratio. Images
// that already fit, or a non-positive maxDim, are returned unchanged.
func ResizeToFit(img image.Image, maxDim int) image.Image {
	b := img.Bounds()
	if maxDim <= 0 || (b.Dx() <= maxDim && b.Dy() <= maxDim) {
		return img
	}
	return resize.Thumbnail(uint(maxDim), uint(maxDim), img, resize.Bilinear)
}
