package preview

import (
	"fmt"
	"image/color"

	"ritualform/internal/layout"
)

// The scene is a resolution-independent display list in surface pixels
// (origin top-left, Y down). Building it is pure computation; rasterizing
// it lives in render.go.

// PointPx is a surface position in pixels.
type PointPx struct {
	X float64
	Y float64
}

// RectPx is an axis-aligned surface rectangle.
type RectPx struct {
	X0, Y0 float64 // top-left
	X1, Y1 float64 // bottom-right
}

// Label is a short text annotation on the surface.
type Label struct {
	At   PointPx
	Text string
}

// Line is a reference line between two surface points.
type Line struct {
	From PointPx
	To   PointPx
}

// GlyphBox marks one projected glyph: its mm-space position (identical to
// the renderer's placement output) and the pixel box drawn around it.
type GlyphBox struct {
	Char   rune
	XMM    float64 // placement position, mm from left paper edge
	YMM    float64 // placement position, mm from bottom paper edge
	Center PointPx
	HalfPx float64
}

// FieldMark is the projected run of one field, in its assigned color.
type FieldMark struct {
	Key    string
	Color  color.RGBA
	SizePt float64
	Glyphs []GlyphBox
	Label  Label
}

// Scene is one full redraw of the calibration surface.
type Scene struct {
	WidthPx  float64
	HeightPx float64
	Title    string
	Paper    RectPx
	Dots     []PointPx
	Labels   []Label
	RefLines []Line
	Fields   []FieldMark
}

// toPx projects a paper position (mm, bottom-left origin, Y up) onto the
// surface (px, top-left origin, Y down). This is the single place the
// vertical flip happens; composed with the renderer's own flip the two
// views stay registered.
func (p *Preview) toPx(xMM, yMM float64) PointPx {
	return PointPx{
		X: PadPx + xMM*ScalePxPerMM,
		Y: PadPx + (p.page.HeightMM-yMM)*ScalePxPerMM,
	}
}

// SurfaceSize returns the pixel dimensions of the preview surface.
func (p *Preview) SurfaceSize() (w, h float64) {
	return p.page.WidthMM*ScalePxPerMM + 2*PadPx,
		p.page.HeightMM*ScalePxPerMM + 2*PadPx
}

// Scene regenerates the full display list from the current offset: paper
// outline, dot grid, coordinate labels, dashed reference lines, and one
// marker run per field placed by the same formula the renderer uses.
func (p *Preview) Scene() Scene {
	w, h := p.SurfaceSize()
	s := Scene{
		WidthPx:  w,
		HeightPx: h,
		Title: fmt.Sprintf("%.0fx%.0fmm  offset X=%+.1fmm Y=%+.1fmm",
			p.page.WidthMM, p.page.HeightMM, p.off.X, p.off.Y),
	}

	topLeft := p.toPx(0, p.page.HeightMM)
	bottomRight := p.toPx(p.page.WidthMM, 0)
	s.Paper = RectPx{X0: topLeft.X, Y0: topLeft.Y, X1: bottomRight.X, Y1: bottomRight.Y}

	for _, g := range layout.GridPoints(p.page, layout.GridDotStepMM) {
		s.Dots = append(s.Dots, p.toPx(g.X, g.Y))
	}
	for _, g := range layout.GridPoints(p.page, layout.GridLabelStepMM) {
		at := p.toPx(g.X, g.Y)
		s.Labels = append(s.Labels, Label{
			At:   PointPx{X: at.X + 8, Y: at.Y - 6},
			Text: fmt.Sprintf("%.0f,%.0f", g.X, g.Y),
		})
	}

	for x := 0.0; x <= p.page.WidthMM; x += layout.GridLabelStepMM {
		s.RefLines = append(s.RefLines, Line{
			From: p.toPx(x, p.page.HeightMM),
			To:   p.toPx(x, 0),
		})
	}
	for y := 0.0; y <= p.page.HeightMM; y += layout.GridLabelStepMM {
		s.RefLines = append(s.RefLines, Line{
			From: p.toPx(0, y),
			To:   p.toPx(p.page.WidthMM, y),
		})
	}

	for _, f := range p.fields {
		s.Fields = append(s.Fields, p.markField(f))
	}
	return s
}

func (p *Preview) markField(f layout.FieldSpec) FieldMark {
	mark := FieldMark{
		Key:    f.Key,
		Color:  f.Color,
		SizePt: f.SizePt,
	}

	half := 5.5 * ScalePxPerMM
	for _, g := range f.Place(f.Sample, p.off) {
		mark.Glyphs = append(mark.Glyphs, GlyphBox{
			Char:   g.Char,
			XMM:    g.X,
			YMM:    g.Y,
			Center: p.toPx(g.X, g.Y),
			HalfPx: half,
		})
	}

	anchor := p.toPx(f.X+p.off.X, f.Y+p.off.Y)
	if f.Vertical {
		mark.Label = Label{
			At:   PointPx{X: anchor.X + 10*ScalePxPerMM, Y: anchor.Y - 2},
			Text: f.Key,
		}
	} else {
		mark.Label = Label{
			At:   PointPx{X: anchor.X, Y: anchor.Y - 8*ScalePxPerMM},
			Text: f.Key,
		}
	}
	return mark
}
