package layout

// Report summarises the layout of a whole document for inspection.
type Report struct {
	Title     string              `json:"title"`
	Paper     Paper               `json:"paper"`
	MarginMM  float64             `json:"margin_mm"`
	DPI       float64             `json:"dpi"`
	PageCount int                 `json:"page_count"`
	MaxWidth  int                 `json:"max_width_px"`
	MaxHeight int                 `json:"max_height_px"`
	Pages     []ReportPage        `json:"pages"`
	Warnings  []ValidationWarning `json:"warnings,omitempty"`
}

// ReportPage describes a single page in the report.
type ReportPage struct {
	PageNumber   int      `json:"page_number"`
	Name         string   `json:"name,omitempty"`
	WidthPx      int      `json:"width_px"`
	HeightPx     int      `json:"height_px"`
	Scale        float64  `json:"scale"`
	Rotation     Rotation `json:"rotation"`
	EffectiveDPI float64  `json:"effective_dpi"`
	Footprint    Area     `json:"footprint"`
}

// EffectiveDPI returns the pixel density of the image as printed.
func EffectiveDPI(d Decision) float64 {
	if d.Scale == 0 {
		return 0
	}
	return d.DPI / d.Scale
}

// NewReportPage builds the report entry for a placed image.
func NewReportPage(pageNumber int, name string, widthPx, heightPx int, pl Placement) ReportPage {
	return ReportPage{
		PageNumber:   pageNumber,
		Name:         name,
		WidthPx:      widthPx,
		HeightPx:     heightPx,
		Scale:        pl.Scale,
		Rotation:     pl.Rotation,
		EffectiveDPI: EffectiveDPI(pl.Decision),
		Footprint:    pl.Footprint(),
	}
}
