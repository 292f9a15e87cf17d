package imageset

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"

	"github.com/kozaktomas/img2pdf/internal/constants"
)

// errZeroSize is returned for headers that decode but describe an empty image.
var errZeroSize = errors.New("image has zero width or height")

// ErrTooManyPixels is returned for images whose header declares more than
// constants.MaxPixels pixels. Such images are never fully decoded.
var ErrTooManyPixels = errors.New("image has too many pixels")

// Dimensions decodes only the image header and returns the pixel size and the
// registered format name ("jpeg", "png", "gif" or "bmp").
func Dimensions(data []byte) (width, height int, format string, err error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, "", fmt.Errorf("failed to decode image header: %w", err)
	}
	if cfg.Width < 1 || cfg.Height < 1 {
		return 0, 0, "", errZeroSize
	}
	if int64(cfg.Width)*int64(cfg.Height) > constants.MaxPixels {
		return 0, 0, "", fmt.Errorf("%w: %dx%d", ErrTooManyPixels, cfg.Width, cfg.Height)
	}
	return cfg.Width, cfg.Height, format, nil
}

// Decode fully decodes the pixel buffer of an image. The header is checked
// first so oversized images are rejected before any pixel buffer is allocated.
func Decode(data []byte) (image.Image, string, error) {
	if _, _, _, err := Dimensions(data); err != nil {
		return nil, "", err
	}
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image: %w", err)
	}
	return img, format, nil
}
