package preview

import (
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"

	"ritualform/internal/types"
)

// Surface palette, matching the operator-facing simulation: pale paper on a
// neutral ground, grey grid furniture, colored field markers.
var (
	paperFill   = color.RGBA{R: 0xFF, G: 0xEB, B: 0xEE, A: 0xFF}
	paperStroke = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
	dotGrey     = color.RGBA{R: 0xBD, G: 0xBD, B: 0xBD, A: 0xFF}
	labelGrey   = color.RGBA{R: 0x9E, G: 0x9E, B: 0x9E, A: 0xFF}
	lineGrey    = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	titleInk    = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xFF}
	transparent = color.RGBA{}
)

// RenderPNG rasterizes the current scene to a PNG file. fontTTF supplies
// the typeface for glyphs and labels; pass the same font bytes the print
// path registered so the simulation shows the real glyph shapes.
func (p *Preview) RenderPNG(path string, fontTTF []byte) error {
	scene := p.Scene()

	family := canvas.NewFontFamily("preview")
	if err := family.LoadFont(fontTTF, 0, canvas.FontRegular); err != nil {
		return types.NewAppError(types.ErrRender, "failed to load preview typeface", err)
	}

	c := canvas.New(scene.WidthPx, scene.HeightPx)
	ctx := canvas.NewContext(c)

	// The scene is in surface coordinates (Y down); the canvas is Y up.
	// All drawing below flips through this one helper.
	flip := func(pt PointPx) (float64, float64) {
		return pt.X, scene.HeightPx - pt.Y
	}

	// Paper outline.
	px0, py1 := flip(PointPx{X: scene.Paper.X0, Y: scene.Paper.Y1})
	ctx.SetFillColor(paperFill)
	ctx.SetStrokeColor(paperStroke)
	ctx.SetStrokeWidth(2)
	ctx.DrawPath(px0, py1, canvas.Rectangle(scene.Paper.X1-scene.Paper.X0, scene.Paper.Y1-scene.Paper.Y0))

	// Dashed reference lines beneath the dots.
	ctx.SetStrokeColor(lineGrey)
	ctx.SetStrokeWidth(1)
	ctx.SetDashes(0, 1, 4)
	for _, ln := range scene.RefLines {
		x0, y0 := flip(ln.From)
		x1, y1 := flip(ln.To)
		path := &canvas.Path{}
		path.MoveTo(0, 0)
		path.LineTo(x1-x0, y1-y0)
		ctx.DrawPath(x0, y0, path)
	}
	ctx.SetDashes(0)

	// Grid dots.
	ctx.SetFillColor(dotGrey)
	ctx.SetStrokeColor(transparent)
	for _, d := range scene.Dots {
		x, y := flip(d)
		ctx.DrawPath(x-1, y-1, canvas.Circle(1))
	}

	labelFace := family.Face(9, labelGrey, canvas.FontRegular, canvas.FontNormal)
	for _, lb := range scene.Labels {
		x, y := flip(lb.At)
		ctx.DrawText(x, y, canvas.NewTextLine(labelFace, lb.Text, canvas.Left))
	}

	for _, mark := range scene.Fields {
		p.drawFieldMark(ctx, family, mark, flip)
	}

	titleFace := family.Face(12, titleInk, canvas.FontRegular, canvas.FontNormal)
	tx, ty := flip(PointPx{X: scene.WidthPx / 2, Y: 16})
	ctx.DrawText(tx, ty, canvas.NewTextLine(titleFace, scene.Title, canvas.Center))

	if err := renderers.Write(path, c, canvas.DPMM(1.0)); err != nil {
		return types.NewAppError(types.ErrRender, "failed to write preview image", err)
	}
	return nil
}

func (p *Preview) drawFieldMark(ctx *canvas.Context, family *canvas.FontFamily, mark FieldMark, flip func(PointPx) (float64, float64)) {
	glyphFace := family.Face(mark.SizePt*ScalePxPerMM, mark.Color, canvas.FontRegular, canvas.FontNormal)

	ctx.SetFillColor(transparent)
	ctx.SetStrokeColor(mark.Color)
	ctx.SetStrokeWidth(1)
	ctx.SetDashes(0, 3, 2)
	for _, g := range mark.Glyphs {
		x, y := flip(g.Center)
		ctx.DrawPath(x-g.HalfPx, y-g.HalfPx, canvas.Rectangle(2*g.HalfPx, 2*g.HalfPx))
	}
	ctx.SetDashes(0)

	for _, g := range mark.Glyphs {
		x, y := flip(g.Center)
		tl := canvas.NewTextLine(glyphFace, string(g.Char), canvas.Center)
		ctx.DrawText(x, y-mark.SizePt*ScalePxPerMM*0.35, tl)
	}

	labelFace := family.Face(10, mark.Color, canvas.FontRegular, canvas.FontNormal)
	lx, ly := flip(mark.Label.At)
	ctx.DrawText(lx, ly, canvas.NewTextLine(labelFace, mark.Label.Text, canvas.Left))
}
