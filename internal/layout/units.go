// Package layout holds the print geometry of the certificate form: unit
// conversion, the per-field layout tables, the glyph placement engine and
// the calibration grid math. Everything here is pure computation; drawing
// happens in internal/render and internal/preview.
package layout

// Conversion constants between mm and PDF points. PDF user space runs at
// 72 points per inch, 25.4 mm per inch. This is the only place the scale
// factor appears.
const (
	MmToPt = 72.0 / 25.4
	PtToMm = 25.4 / 72.0
)

// ToPoints converts millimeters to PDF points.
func ToPoints(mm float64) float64 { return mm * MmToPt }

// ToMillimeters converts PDF points to millimeters.
func ToMillimeters(pt float64) float64 { return pt * PtToMm }
