package render

import (
	"fmt"
	"os"

	ledongthucpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdftypes "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	"ritualform/internal/logger"
	"ritualform/internal/types"
)

// compositeTemplate finishes the output document. With a template present
// the text layer is stamped over it (template beneath, text on top); with
// no template the text layer is promoted to the output as-is, for printing
// directly onto pre-printed paper stock.
func compositeTemplate(overlayPath, templatePath, outPath string) error {
	if templatePath == "" {
		return promoteOverlay(overlayPath, outPath)
	}
	if _, err := os.Stat(templatePath); err != nil {
		logger.Warn("template not found, emitting text-only layer",
			logger.String("template", templatePath))
		return promoteOverlay(overlayPath, outPath)
	}

	if err := validateTemplate(templatePath); err != nil {
		return types.NewAppErrorWithDetails(types.ErrRender,
			"background template is not a usable PDF", templatePath, err)
	}

	// Same-size pages, unscaled, centered: the template registers exactly
	// under the text layer.
	wm, err := api.PDFWatermark(templatePath, "scale:1 abs, pos:c, rot:0", false, false, pdftypes.POINTS)
	if err != nil {
		return types.NewAppError(types.ErrRender, "failed to prepare template layer", err)
	}
	if err := api.AddWatermarksFile(overlayPath, outPath, nil, wm, nil); err != nil {
		return types.NewAppError(types.ErrRender, "failed to merge template and text layer", err)
	}
	return nil
}

// validateTemplate confirms the template opens as a PDF with at least one page.
func validateTemplate(path string) error {
	f, reader, err := ledongthucpdf.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if reader.NumPage() < 1 {
		return fmt.Errorf("template has no pages")
	}
	return nil
}

// promoteOverlay moves the finished text layer into place as the output.
func promoteOverlay(overlayPath, outPath string) error {
	if err := os.Rename(overlayPath, outPath); err != nil {
		return types.NewAppError(types.ErrRender, "failed to finalize output file", err)
	}
	return nil
}
