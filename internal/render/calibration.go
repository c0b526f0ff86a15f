package render

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/signintech/gopdf"

	"ritualform/internal/layout"
	"ritualform/internal/logger"
	"ritualform/internal/types"
)

const (
	gridDotRadiusMM  = 0.3
	gridLabelSizePt  = 6.0
	gridTitleSizePt  = 10.0
	gridLineWidthMM  = 0.2
)

// RenderCalibration writes the calibration grid page: a dot at every 10 mm
// intersection, a coordinate label at every 50 mm intersection, and a title
// line. The operator prints it on the real paper stock and measures the
// printer's offset against it with a ruler.
func (r *Renderer) RenderCalibration(outPath string) (string, error) {
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

	doc.SetLineWidth(gridLineWidthMM)
	doc.SetStrokeColor(0, 0, 0)
	doc.SetTextColor(0, 0, 0)

	for _, p := range layout.GridPoints(r.page, layout.GridDotStepMM) {
		yTop := r.page.HeightMM - p.Y
		doc.Oval(p.X-gridDotRadiusMM, yTop-gridDotRadiusMM,
			p.X+gridDotRadiusMM, yTop+gridDotRadiusMM)
	}

	if err := doc.SetFont(fontName, "", gridLabelSizePt); err != nil {
		return "", types.NewAppError(types.ErrRender, "failed to select font size", err)
	}
	for _, p := range layout.GridPoints(r.page, layout.GridLabelStepMM) {
		doc.SetX(p.X + 2)
		doc.SetY(r.page.HeightMM - p.Y - 2)
		if err := doc.Cell(nil, fmt.Sprintf("%.0f,%.0f", p.X, p.Y)); err != nil {
			return "", types.NewAppError(types.ErrRender, "failed to draw grid label", err)
		}
	}

	if err := doc.SetFont(fontName, "", gridTitleSizePt); err != nil {
		return "", types.NewAppError(types.ErrRender, "failed to select font size", err)
	}
	doc.SetX(10)
	doc.SetY(5)
	title := fmt.Sprintf("CALIBRATION GRID (%.0fx%.0fmm) - dot every %.0fmm",
		r.page.WidthMM, r.page.HeightMM, layout.GridDotStepMM)
	if err := doc.Cell(nil, title); err != nil {
		return "", types.NewAppError(types.ErrRender, "failed to draw title", err)
	}

	if dir := filepath.Dir(outPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", types.NewAppError(types.ErrRender, "failed to create output directory", err)
		}
	}
	if err := doc.WritePdf(outPath); err != nil {
		os.Remove(outPath)
		return "", types.NewAppError(types.ErrRender, "failed to write calibration grid", err)
	}

	abs, err := filepath.Abs(outPath)
	if err != nil {
		abs = outPath
	}
	logger.Info("calibration grid rendered", logger.String("output", abs))
	return abs, nil
}
