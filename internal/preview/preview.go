// Package preview is the non-printing calibration simulation. It computes
// the same glyph geometry as internal/render, from the same layout tables
// and placement engine, and projects it onto a raster surface so the
// operator can tune the global offset before committing paper and ink.
package preview

import (
	"strings"

	"ritualform/internal/layout"
	"ritualform/internal/types"
)

const (
	// ScalePxPerMM converts millimeters to preview surface pixels. This is
	// a screen scale only; it never feeds the print path.
	ScalePxPerMM = 1.5
	// PadPx is the blank margin around the simulated paper.
	PadPx = 30.0
)

// Preview holds the mutable calibration state: the current offset and the
// layout it visualizes. Field text comes from each spec's sample string,
// never from real records.
type Preview struct {
	page   layout.Page
	fields []layout.FieldSpec
	off    layout.Offset
}

// New creates a preview for one page size and field table.
func New(page layout.Page, fields []layout.FieldSpec) *Preview {
	return &Preview{page: page, fields: fields}
}

// Offset returns the current calibration offset.
func (p *Preview) Offset() layout.Offset { return p.off }

// SetOffset replaces the current offset.
func (p *Preview) SetOffset(off layout.Offset) { p.off = off }

// SetOffsetStrings parses operator-typed offset values, rejecting invalid
// input before it can reach a renderer.
func (p *Preview) SetOffsetStrings(xs, ys string) error {
	off, err := layout.ParseOffset(xs, ys)
	if err != nil {
		return err
	}
	p.off = off
	return nil
}

// Nudge shifts one axis of the offset by delta millimeters. Axis is "x" or
// "y". Nudges accumulate: two +0.5 nudges equal one +1.0 nudge.
func (p *Preview) Nudge(axis string, delta float64) error {
	switch strings.ToLower(axis) {
	case "x":
		p.off.X += delta
	case "y":
		p.off.Y += delta
	default:
		return types.NewAppErrorWithDetails(types.ErrInvalidInput,
			"unknown offset axis", axis, nil)
	}
	return nil
}

// CommitPrint hands the current offset to the owning context's print
// callback. The preview itself never renders a real document.
func (p *Preview) CommitPrint(fn func(layout.Offset) error) error {
	if fn == nil {
		return nil
	}
	return fn(p.off)
}
