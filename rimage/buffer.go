package rimage

import (
	"image"
	"image/draw"

	"github.com/pkg/errors"
)

// BytesPerPixel is the stride of one pixel in an RGBA8 buffer.
const BytesPerPixel = 4

// BufferFromImage flattens any image into a row-major, non-premultiplied RGBA8 buffer.
func BufferFromImage(img image.Image) ([]byte, int, int) {
	b := img.Bounds()
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Stride == b.Dx()*BytesPerPixel && b.Min == (image.Point{}) {
		return nrgba.Pix, b.Dx(), b.Dy()
	}
	canvas := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(canvas, canvas.Bounds(), img, b.Min, draw.Src)
	return canvas.Pix, b.Dx(), b.Dy()
}

// ImageFromBuffer wraps an RGBA8 buffer as an image without copying it.
func ImageFromBuffer(buf []byte, width, height int) (*image.NRGBA, error) {
	if width < 1 || height < 1 {
		return nil, errors.Errorf("invalid image dimensions %dx%d", width, height)
	}
	if len(buf) != width*height*BytesPerPixel {
		return nil, errors.Errorf("buffer of %d bytes does not hold a %dx%d RGBA8 image", len(buf), width, height)
	}
	return &image.NRGBA{
		Pix:    buf,
		Stride: width * BytesPerPixel,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// ToRGBA returns img as a premultiplied *image.RGBA anchored at the origin, copying only when img
// is not one already.
func ToRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == b.Dx()*BytesPerPixel && b.Min == (image.Point{}) {
		return rgba
	}
	canvas := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(canvas, canvas.Bounds(), img, b.Min, draw.Src)
	return canvas
}
