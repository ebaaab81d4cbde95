package utils

import (
	"testing"

	"go.viam.com/test"
)

func TestMimeTypeFromPath(t *testing.T) {
	for path, expected := range map[string]string{
		"a.png":         MimeTypePNG,
		"dir/b.JPG":     MimeTypeJPEG,
		"c.jpeg":        MimeTypeJPEG,
		"d.bmp":         MimeTypeBMP,
		"e.tif":         MimeTypeTIFF,
		"f.tiff":        MimeTypeTIFF,
		"g.ppm":         MimeTypePPM,
		"h.qoi":         MimeTypeQOI,
		"i.gif":         "",
		"no_extension":  "",
		"dots.in.a.png": MimeTypePNG,
	} {
		test.That(t, MimeTypeFromPath(path), test.ShouldEqual, expected)
	}
}
