package layout

import "math"

// Point is a position on the page in mm, bottom-left origin.
type Point struct {
	X float64
	Y float64
}

// GridPoints returns every stepMM-spaced grid intersection across the full
// page extent, both edges included: (floor(w/step)+1) * (floor(h/step)+1)
// points. The calibration grid PDF and the preview draw from the same list
// so the two can never disagree.
func GridPoints(p Page, stepMM float64) []Point {
	if stepMM <= 0 {
		return nil
	}
	nx := int(math.Floor(p.WidthMM/stepMM)) + 1
	ny := int(math.Floor(p.HeightMM/stepMM)) + 1
	out := make([]Point, 0, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			out = append(out, Point{X: float64(i) * stepMM, Y: float64(j) * stepMM})
		}
	}
	return out
}

// Grid intervals used by the calibration grid and the preview.
const (
	GridDotStepMM   = 10.0
	GridLabelStepMM = 50.0
)
