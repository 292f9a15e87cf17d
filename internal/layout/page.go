// Package layout plans how a single image is placed on a fixed-size page.
// All physical lengths are in millimetres.
package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/kozaktomas/img2pdf/internal/constants"
)

// MMPerInch converts inches to millimetres.
const MMPerInch = 25.4

// Paper is a named physical page size.
type Paper struct {
	Name     string  `json:"name" yaml:"name"`
	WidthMM  float64 `json:"width_mm" yaml:"width_mm"`
	HeightMM float64 `json:"height_mm" yaml:"height_mm"`
}

// A4 is the default paper.
var A4 = Paper{Name: "A4", WidthMM: constants.DefaultPageWidthMM, HeightMM: constants.DefaultPageHeightMM}

// Area is a physical width/height pair.
type Area struct {
	WidthMM  float64 `json:"width_mm"`
	HeightMM float64 `json:"height_mm"`
}

// PageSpec holds the page geometry shared by every page of a document.
type PageSpec struct {
	Paper    Paper
	MarginMM float64 // same margin on all four sides
	DPI      float64 // pixel density assumed for pixel -> mm conversion
}

// DefaultPageSpec returns A4 with 10mm margins at 300 DPI.
func DefaultPageSpec() PageSpec {
	return PageSpec{
		Paper:    A4,
		MarginMM: constants.DefaultMarginMM,
		DPI:      constants.DefaultDPI,
	}
}

// Usable returns the page size minus the margins on all sides.
// 210 - 2*10 = 190mm by 297 - 2*10 = 277mm for the default spec.
func (s PageSpec) Usable() Area {
	return Area{
		WidthMM:  s.Paper.WidthMM - 2*s.MarginMM,
		HeightMM: s.Paper.HeightMM - 2*s.MarginMM,
	}
}

// Validate rejects geometries the planner cannot work with.
func (s PageSpec) Validate() error {
	for _, v := range []struct {
		name  string
		value float64
	}{
		{"dpi", s.DPI},
		{"margin", s.MarginMM},
		{"paper width", s.Paper.WidthMM},
		{"paper height", s.Paper.HeightMM},
	} {
		if math.IsNaN(v.value) || math.IsInf(v.value, 0) {
			return fmt.Errorf("%s must be a finite number, got %v", v.name, v.value)
		}
	}
	if s.DPI <= 0 {
		return fmt.Errorf("dpi must be positive, got %v", s.DPI)
	}
	if s.MarginMM < 0 {
		return fmt.Errorf("margin must not be negative, got %vmm", s.MarginMM)
	}
	if s.Paper.WidthMM <= 0 || s.Paper.HeightMM <= 0 {
		return errors.New("paper size must be positive")
	}
	u := s.Usable()
	if u.WidthMM <= 0 || u.HeightMM <= 0 {
		return fmt.Errorf("margin %vmm leaves no usable area on %s paper", s.MarginMM, s.Paper.Name)
	}
	return nil
}

// PixelsToMM converts a pixel length to millimetres at the given DPI.
func PixelsToMM(px int, dpi float64) float64 {
	return float64(px) / dpi * MMPerInch
}
