package layout

import "fmt"

// ValidationWarning describes a placement issue found during validation.
type ValidationWarning struct {
	PageNumber int    `json:"page_number"`
	Message    string `json:"message"`
	Severity   string `json:"severity"` // "error" or "warning"
}

// Validate checks every placement against the usable area of spec.
// Page numbers in the result are 1-based.
func Validate(spec PageSpec, placements []Placement) []ValidationWarning {
	var warnings []ValidationWarning
	for i, pl := range placements {
		warnings = append(warnings, validatePlacement(i+1, spec, pl)...)
	}
	return warnings
}

func validatePlacement(pageNumber int, spec PageSpec, pl Placement) []ValidationWarning {
	var warnings []ValidationWarning
	const eps = 0.01

	if pl.Scale <= 0 || pl.Scale > 1.0 {
		warnings = append(warnings, ValidationWarning{
			PageNumber: pageNumber,
			Message:    fmt.Sprintf("scale %.4f outside (0, 1]", pl.Scale),
			Severity:   "error",
		})
	}

	fp := pl.Footprint()
	left := pl.CenterX - fp.WidthMM/2
	top := pl.CenterY - fp.HeightMM/2
	contentLeft := spec.MarginMM
	contentTop := spec.MarginMM
	contentRight := spec.Paper.WidthMM - spec.MarginMM
	contentBottom := spec.Paper.HeightMM - spec.MarginMM

	if left < contentLeft-eps {
		warnings = append(warnings, ValidationWarning{
			PageNumber: pageNumber,
			Message:    fmt.Sprintf("left edge (%.2f) extends past content left edge (%.2f)", left, contentLeft),
			Severity:   "error",
		})
	}
	if left+fp.WidthMM > contentRight+eps {
		warnings = append(warnings, ValidationWarning{
			PageNumber: pageNumber,
			Message:    fmt.Sprintf("right edge (%.2f) extends past content right edge (%.2f)", left+fp.WidthMM, contentRight),
			Severity:   "error",
		})
	}
	if top < contentTop-eps {
		warnings = append(warnings, ValidationWarning{
			PageNumber: pageNumber,
			Message:    fmt.Sprintf("top edge (%.2f) extends above content top (%.2f)", top, contentTop),
			Severity:   "error",
		})
	}
	if top+fp.HeightMM > contentBottom+eps {
		warnings = append(warnings, ValidationWarning{
			PageNumber: pageNumber,
			Message:    fmt.Sprintf("bottom edge (%.2f) extends below content bottom (%.2f)", top+fp.HeightMM, contentBottom),
			Severity:   "error",
		})
	}

	return warnings
}
