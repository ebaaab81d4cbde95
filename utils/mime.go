package utils

import (
	"path/filepath"
	"strings"
)

const (
	// MimeTypeJPEG is regular jpgs.
	MimeTypeJPEG = "image/jpeg"

	// MimeTypePNG is regular pngs.
	MimeTypePNG = "image/png"

	// MimeTypeBMP is for uncompressed bitmaps.
	MimeTypeBMP = "image/bmp"

	// MimeTypeTIFF is for .tif/.tiff files.
	MimeTypeTIFF = "image/tiff"

	// MimeTypePPM is for netpbm .ppm files.
	MimeTypePPM = "image/x-portable-pixmap"

	// MimeTypeQOI is for .qoi "Quite OK Image" for lossless, fast encoding/decoding.
	MimeTypeQOI = "image/qoi"
)

var extensionMimeTypes = map[string]string{
	".jpg":  MimeTypeJPEG,
	".jpeg": MimeTypeJPEG,
	".png":  MimeTypePNG,
	".bmp":  MimeTypeBMP,
	".tif":  MimeTypeTIFF,
	".tiff": MimeTypeTIFF,
	".ppm":  MimeTypePPM,
	".qoi":  MimeTypeQOI,
}

// MimeTypeFromPath returns the encodable mime type for the file extension of path, or the empty
// string when the extension is not one we can write.
func MimeTypeFromPath(path string) string {
	return extensionMimeTypes[strings.ToLower(filepath.Ext(path))]
}
