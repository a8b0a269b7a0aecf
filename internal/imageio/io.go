// Package imageio decodes image files into pixmaps and encodes pixmaps
// back out. Format support: PNG, JPEG, BMP and TIFF for both directions;
// GIF and WebP decode-only.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	// Registered for auto-detection in Decode.
	_ "image/gif"

	_ "golang.org/x/image/webp"

	"github.com/gogpu/pixfilter"
)

// ErrUnsupportedFormat is returned when the target format is not supported.
var ErrUnsupportedFormat = errors.New("imageio: unsupported format")

// jpegQuality is used for JPEG encoding.
const jpegQuality = 92

// Load reads the image at path into an RGBA8 pixmap, auto-detecting the
// format from the content.
func Load(path string) (*pixfilter.Pixmap, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from r, auto-detecting the format.
func Decode(r io.Reader) (*pixfilter.Pixmap, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}

	pixfilter.Logger().Debug("imageio: decoded image", "format", format)

	return pixfilter.FromImage(img), nil
}

// Save encodes pm to path, choosing the format from the file extension.
func Save(pm *pixfilter.Pixmap, path string) error {
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("imageio: create file: %w", err)
	}

	if err := Encode(f, pm, format); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Encode writes pm to w in the given format ("png", "jpg", "jpeg",
// "bmp", "tiff").
func Encode(w io.Writer, pm *pixfilter.Pixmap, format string) error {
	img := pm.ToImage()

	var err error
	switch format {
	case "png":
		err = png.Encode(w, img)
	case "jpg", "jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
	case "bmp":
		err = bmp.Encode(w, img)
	case "tiff", "tif":
		err = tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", format, err)
	}
	return nil
}
