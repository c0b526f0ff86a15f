package layout

import (
	"strconv"
	"strings"

	"ritualform/internal/types"
)

// Offset is the global calibration correction in millimeters, applied
// additively to every field anchor before placement. One knob for the
// whole page; there is deliberately no per-field granularity.
type Offset struct {
	X float64
	Y float64
}

// ParseOffset validates operator-supplied offset strings before any
// rendering work begins. Empty input reads as zero; anything that is not
// a number is rejected.
func ParseOffset(xs, ys string) (Offset, error) {
	x, err := parseMM(xs)
	if err != nil {
		return Offset{}, types.NewAppErrorWithDetails(types.ErrInvalidOffset,
			"offset X is not a number", xs, err)
	}
	y, err := parseMM(ys)
	if err != nil {
		return Offset{}, types.NewAppErrorWithDetails(types.ErrInvalidOffset,
			"offset Y is not a number", ys, err)
	}
	return Offset{X: x, Y: y}, nil
}

func parseMM(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}
