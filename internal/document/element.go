package document

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	"github.com/kozaktomas/img2pdf/internal/imageset"
)

// Image types understood by the PDF renderer.
const (
	imageTypeJPG = "JPG"
	imageTypePNG = "PNG"
	imageTypeGIF = "GIF"
)

// pngHeaderLen covers the signature and the IHDR chunk up to the interlace byte.
const pngHeaderLen = 29

// embeddable fully decodes data and returns bytes the renderer can embed
// together with their image type. JPEG, GIF and plain 8-bit PNG are returned
// unchanged; anything else is re-packed into an 8-bit PNG.
func embeddable(data []byte) ([]byte, string, error) {
	img, format, err := imageset.Decode(data)
	if err != nil {
		return nil, "", err
	}

	switch format {
	case "jpeg":
		return data, imageTypeJPG, nil
	case "gif":
		return data, imageTypeGIF, nil
	case "png":
		if !needsRepack(data) {
			return data, imageTypePNG, nil
		}
	}

	out, err := repackPNG(img)
	if err != nil {
		return nil, "", fmt.Errorf("failed to re-pack %s image: %w", format, err)
	}
	return out, imageTypePNG, nil
}

// needsRepack reports whether a PNG uses 16-bit samples or Adam7 interlacing,
// neither of which the renderer can embed.
func needsRepack(data []byte) bool {
	if len(data) < pngHeaderLen {
		return true
	}
	bitDepth := data[24]
	interlace := data[28]
	return bitDepth == 16 || interlace != 0
}

func repackPNG(img image.Image) ([]byte, error) {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
