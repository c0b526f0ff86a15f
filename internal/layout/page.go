package layout

import (
	"strings"

	"ritualform/internal/types"
)

// Page is a physical paper size in millimeters. Coordinates on a page are
// measured from the bottom-left corner, Y increasing upward, the same
// convention the PDF engine and the calibration preview must share.
type Page struct {
	WidthMM  float64
	HeightMM float64
}

// The two paper stocks the certificate forms are printed on.
var (
	PageA4 = Page{WidthMM: 210, HeightMM: 297}
	PageF4 = Page{WidthMM: 215, HeightMM: 330}
)

// PageByName resolves a configured page-size name.
func PageByName(name string) (Page, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "a4":
		return PageA4, nil
	case "f4":
		return PageF4, nil
	}
	return Page{}, types.NewAppErrorWithDetails(types.ErrConfig,
		"unknown page size", name, nil)
}
