package render

import (
	"path/filepath"
	"os"

	"github.com/signintech/gopdf"

	"ritualform/internal/layout"
	"ritualform/internal/logger"
	"ritualform/internal/types"
)

// Renderer generates single-page certificate documents for one configured
// page size and field layout. It holds no per-job state; values and offset
// arrive fresh with every Render call.
type Renderer struct {
	page   layout.Page
	fields []layout.FieldSpec
	fonts  *FontRegistry

	// templatePath is the pre-printed form template merged beneath the text
	// layer. An absent file selects the text-only transparent-layer mode.
	templatePath string
}

// Options configures a Renderer.
type Options struct {
	TemplatePath string
	FontPaths    []string
}

// New creates a Renderer for the given page and field table.
func New(page layout.Page, fields []layout.FieldSpec, opts Options) *Renderer {
	return &Renderer{
		page:         page,
		fields:       fields,
		fonts:        NewFontRegistry(opts.FontPaths),
		templatePath: opts.TemplatePath,
	}
}

// Page returns the physical page the renderer is configured for.
func (r *Renderer) Page() layout.Page { return r.page }

// Fields returns the active field layout table.
func (r *Renderer) Fields() []layout.FieldSpec { return r.fields }

// Render produces one certificate PDF at outPath: every field's text drawn
// at its placement-engine position, shifted by the calibration offset, then
// composited over the background template when one is present. On failure
// no output file is left behind.
func (r *Renderer) Render(values types.FieldValues, off layout.Offset, outPath string) (string, error) {
	fontData, fontPath, err := r.fonts.Load()
	if err != nil {
		return "", err
	}

	doc := &gopdf.GoPdf{}
	doc.Start(gopdf.Config{
		PageSize: gopdf.Rect{W: r.page.WidthMM, H: r.page.HeightMM},
		Unit:     gopdf.UnitMM,
	})
	doc.AddPage()

	if err := doc.AddTTFFontData(fontName, fontData); err != nil {
		return "", types.NewAppErrorWithDetails(types.ErrRender,
			"failed to load typeface into document", fontPath, err)
	}

	for _, f := range r.fields {
		text := f.Value(values)
		if f.Vertical {
			text = Fullwidth(text)
		}
		if text == "" {
			continue
		}
		if err := doc.SetFont(fontName, "", f.SizePt); err != nil {
			return "", types.NewAppError(types.ErrRender, "failed to select font size", err)
		}
		if err := r.drawRun(doc, f, text, off); err != nil {
			return "", types.NewAppErrorWithDetails(types.ErrRender,
				"failed to draw field", f.Key, err)
		}
	}

	if dir := filepath.Dir(outPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", types.NewAppError(types.ErrRender, "failed to create output directory", err)
		}
	}

	// The text layer goes to a temporary sibling first so a failed composite
	// never leaves a partial output file.
	overlayPath := outPath + ".overlay.tmp"
	if err := doc.WritePdf(overlayPath); err != nil {
		os.Remove(overlayPath)
		return "", types.NewAppError(types.ErrRender, "failed to write text layer", err)
	}
	defer os.Remove(overlayPath)

	if err := compositeTemplate(overlayPath, r.templatePath, outPath); err != nil {
		os.Remove(outPath)
		return "", err
	}

	abs, err := filepath.Abs(outPath)
	if err != nil {
		abs = outPath
	}
	logger.Info("certificate rendered",
		logger.String("output", abs),
		logger.Float64("offsetX", off.X),
		logger.Float64("offsetY", off.Y))
	return abs, nil
}

// drawRun draws one glyph run, centering each glyph cell on its computed
// position. Placement coordinates are bottom-left origin; the document's
// cursor is top-left origin, so Y flips against the page height here and
// nowhere else.
func (r *Renderer) drawRun(doc *gopdf.GoPdf, f layout.FieldSpec, text string, off layout.Offset) error {
	sizeMM := f.SizePt * layout.PtToMm
	for _, g := range f.Place(text, off) {
		ch := string(g.Char)
		w, err := doc.MeasureTextWidth(ch)
		if err != nil {
			w = sizeMM
		}
		doc.SetX(g.X - w/2)
		doc.SetY(r.page.HeightMM - g.Y - sizeMM/2)
		if err := doc.Cell(nil, ch); err != nil {
			return err
		}
	}
	return nil
}
