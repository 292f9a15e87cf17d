package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// DefaultFontFamily is the family name of the embedded default font.
const DefaultFontFamily = "GoRegular"

// Font is the single typeface used for all text in a document.
type Font struct {
	Family string
	Path   string // empty for the embedded default

	data []byte
}

// Data returns the raw TrueType bytes.
func (f *Font) Data() []byte {
	return f.data
}

// DefaultFont returns the embedded Go Regular font.
func DefaultFont() *Font {
	return &Font{Family: DefaultFontFamily, data: goregular.TTF}
}

// LoadFont reads a TrueType font from path. An empty path selects the
// embedded default.
func LoadFont(path string) (*Font, error) {
	if path == "" {
		return DefaultFont(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FontError{Path: path, Err: err}
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, &FontError{Path: path, Err: err}
	}
	if f.NumGlyphs() == 0 {
		return nil, &FontError{Path: path, Err: errors.New("font has no glyphs")}
	}

	family := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Font{Family: family, Path: path, data: data}, nil
}
