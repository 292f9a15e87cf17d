package layout

// Rotation is the orientation applied to an image on its page.
type Rotation int

const (
	RotationNone Rotation = iota
	RotationClockwise90
)

func (r Rotation) String() string {
	switch r {
	case RotationClockwise90:
		return "cw90"
	default:
		return "none"
	}
}

// Degrees returns the clockwise rotation angle.
func (r Rotation) Degrees() float64 {
	if r == RotationClockwise90 {
		return 90
	}
	return 0
}

// MarshalText implements encoding.TextMarshaler.
func (r Rotation) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Decision is the per-image placement choice.
type Decision struct {
	Scale        float64  `json:"scale"`
	Rotation     Rotation `json:"rotation"`
	DPI          float64  `json:"dpi"`
	PageWidthMM  float64  `json:"page_width_mm"`
	PageHeightMM float64  `json:"page_height_mm"`
}

// Fit picks the orientation that gives the larger uniform scale for an image
// of widthPx x heightPx inside usable, then caps the scale at 1.0.
// Ties keep the image unrotated. The cap is applied after the orientation is
// chosen, so an image that would be enlarged unrotated stays unrotated.
func Fit(widthPx, heightPx int, usable Area, dpi float64) (float64, Rotation) {
	w := PixelsToMM(widthPx, dpi)
	h := PixelsToMM(heightPx, dpi)

	unrotated := min(usable.WidthMM/w, usable.HeightMM/h)
	rotated := min(usable.WidthMM/h, usable.HeightMM/w)

	if rotated > unrotated {
		return min(rotated, 1.0), RotationClockwise90
	}
	return min(unrotated, 1.0), RotationNone
}

// Planner computes decisions for one page geometry.
type Planner struct {
	Spec PageSpec
}

// NewPlanner returns a planner for spec.
func NewPlanner(spec PageSpec) Planner {
	return Planner{Spec: spec}
}

// Plan returns the layout decision for an image of the given pixel size.
func (p Planner) Plan(widthPx, heightPx int) Decision {
	scale, rot := Fit(widthPx, heightPx, p.Spec.Usable(), p.Spec.DPI)
	return Decision{
		Scale:        scale,
		Rotation:     rot,
		DPI:          p.Spec.DPI,
		PageWidthMM:  p.Spec.Paper.WidthMM,
		PageHeightMM: p.Spec.Paper.HeightMM,
	}
}

// Placement is where an image is drawn on its page (origin top-left, mm).
// X, Y, W and H describe the image box before rotation; rotation is applied
// around (CenterX, CenterY), which is also the centre of the box.
type Placement struct {
	Decision

	X       float64 `json:"x_mm"`
	Y       float64 `json:"y_mm"`
	W       float64 `json:"w_mm"`
	H       float64 `json:"h_mm"`
	CenterX float64 `json:"center_x_mm"`
	CenterY float64 `json:"center_y_mm"`
}

// Footprint returns the page area actually covered after rotation.
func (pl Placement) Footprint() Area {
	if pl.Rotation == RotationClockwise90 {
		return Area{WidthMM: pl.H, HeightMM: pl.W}
	}
	return Area{WidthMM: pl.W, HeightMM: pl.H}
}

// Place plans an image and centres it in the usable area on both axes.
func (p Planner) Place(widthPx, heightPx int) Placement {
	d := p.Plan(widthPx, heightPx)
	usable := p.Spec.Usable()

	w := PixelsToMM(widthPx, d.DPI) * d.Scale
	h := PixelsToMM(heightPx, d.DPI) * d.Scale
	cx := p.Spec.MarginMM + usable.WidthMM/2
	cy := p.Spec.MarginMM + usable.HeightMM/2

	return Placement{
		Decision: d,
		X:        cx - w/2,
		Y:        cy - h/2,
		W:        w,
		H:        h,
		CenterX:  cx,
		CenterY:  cy,
	}
}
