// Package constants provides shared constants used across the codebase.
// Centralizing these values ensures consistency and makes them easier to modify.
package constants

// Page geometry constants
const (
	// DefaultPageWidthMM is the width of an A4 page in millimetres
	DefaultPageWidthMM = 210.0

	// DefaultPageHeightMM is the height of an A4 page in millimetres
	DefaultPageHeightMM = 297.0

	// DefaultMarginMM is the margin applied on every side of the page
	DefaultMarginMM = 10.0

	// DefaultDPI is the assumed pixel density used to convert pixels to millimetres
	DefaultDPI = 300.0

	// DefaultPaper is the name of the default paper preset
	DefaultPaper = "A4"
)

// Caption constants
const (
	// CaptionFontSize is the font size in points used for page captions
	CaptionFontSize = 8.0

	// CaptionLineHeightMM is the height of the caption cell
	CaptionLineHeightMM = 4.0
)

// Processing constants
const (
	// WorkerPoolSize is the default number of sources converted in parallel
	WorkerPoolSize = 4

	// MaxEntrySize is the largest archive entry that will be read (256MB)
	MaxEntrySize = 256 << 20

	// MaxPixels is the largest width*height accepted for a single image (2^28,
	// about 1GB once decoded to 32-bit pixels)
	MaxPixels = 1 << 28

	// OutputExtension is appended to the collection name to form the output file name
	OutputExtension = ".pdf"
)
