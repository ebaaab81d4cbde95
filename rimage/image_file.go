package rimage

import (
	"bufio"
	"image"
	// register gif.
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"

	"github.com/lmittmann/ppm"
	"github.com/pkg/errors"
	"github.com/xfmoulet/qoi"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	// register webp.
	_ "golang.org/x/image/webp"

	"go.viam.com/slic/utils"
)

// ReadImageFromFile decodes the image at path. The format is sniffed from the file contents, so
// the extension does not have to match.
func ReadImageFromFile(path string) (image.Image, error) {
	//nolint:gosec
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer goutils.UncheckedErrorFunc(f.Close)

	img, _, err := image.Decode(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "cannot decode image %q", path)
	}
	return img, nil
}

// EncodeImage writes img to w in the format named by mimeType.
func EncodeImage(w io.Writer, img image.Image, mimeType string) error {
	switch mimeType {
	case utils.MimeTypePNG:
		return png.Encode(w, img)
	case utils.MimeTypeJPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case utils.MimeTypeBMP:
		return bmp.Encode(w, img)
	case utils.MimeTypeTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case utils.MimeTypePPM:
		// ppm only encodes the RGBA color model, and drops alpha.
		return ppm.Encode(w, ToRGBA(img))
	case utils.MimeTypeQOI:
		return qoi.Encode(w, img)
	default:
		return errors.Errorf("do not know how to encode %q", mimeType)
	}
}

// WriteImageToFile encodes img into path, picking the format from the extension.
func WriteImageToFile(path string, img image.Image) (err error) {
	mimeType := utils.MimeTypeFromPath(path)
	if mimeType == "" {
		return errors.Errorf("unsupported image extension for %q", path)
	}

	//nolint:gosec
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Combine(err, f.Close())
	}()

	w := bufio.NewWriter(f)
	if err := EncodeImage(w, img, mimeType); err != nil {
		return errors.Wrapf(err, "cannot encode %q", path)
	}
	return w.Flush()
}
