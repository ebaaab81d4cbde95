package rimage

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

var font *truetype.Font

// init sets up the fonts we want to use.
func init() {
	var err error
	font, err = truetype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
}

// Font returns the font we use for drawing.
func Font() *truetype.Font {
	return font
}

// DrawString writes a string to the given context at a particular point.
func DrawString(dc *gg.Context, text string, p image.Point, c color.Color, size float64) {
	dc.SetFontFace(truetype.NewFace(Font(), &truetype.Options{Size: size}))
	dc.SetColor(c)
	dc.DrawStringWrapped(text, float64(p.X), float64(p.Y), 0, 0, float64(dc.Width()), 1, 0)
}

// Composite draws overlay over src and returns the result. Transparent overlay pixels leave
// src showing through.
func Composite(src, overlay image.Image) image.Image {
	dc := gg.NewContextForImage(src)
	dc.DrawImage(overlay, 0, 0)
	return dc.Image()
}

// CompositeWithCaption is Composite with a caption in the top left corner, drawn in c over a
// translucent backing so it stays legible on any image.
func CompositeWithCaption(src, overlay image.Image, caption string, c color.Color) image.Image {
	dc := gg.NewContextForImage(src)
	dc.DrawImage(overlay, 0, 0)

	const size, pad = 14.0, 4.0
	dc.SetFontFace(truetype.NewFace(Font(), &truetype.Options{Size: size}))
	w, h := dc.MeasureString(caption)
	dc.SetColor(color.NRGBA{A: 160})
	dc.DrawRectangle(0, 0, w+2*pad, h+2*pad)
	dc.Fill()
	DrawString(dc, caption, image.Pt(int(pad), int(pad)), c, size)
	return dc.Image()
}
