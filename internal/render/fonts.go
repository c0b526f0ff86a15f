// Package render produces the print documents: the certificate text layer,
// the optional template composite, and the calibration grid. It draws every
// glyph at the positions computed by internal/layout, never at positions of
// its own making, so the calibration preview can reproduce its geometry.
package render

import (
	"os"
	"strings"
	"sync"

	"github.com/signintech/gopdf"

	"ritualform/internal/logger"
	"ritualform/internal/types"
)

// fontName is the registered name the generated documents select.
const fontName = "cjk"

// DefaultFontPaths are the candidate typeface locations checked in order:
// common system font files on each platform, then the bundled asset folder.
// The list is data; no platform branching happens at lookup time.
func DefaultFontPaths() []string {
	return []string{
		`C:\Windows\Fonts\simsun.ttc`,
		`C:\Windows\Fonts\msyh.ttc`,
		`C:\Windows\Fonts\simhei.ttf`,
		"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
		"/usr/share/fonts/truetype/wqy/wqy-zenhei.ttc",
		"/usr/share/fonts/truetype/arphic/uming.ttc",
		"/System/Library/Fonts/PingFang.ttc",
		"/System/Library/Fonts/STHeiti Light.ttc",
		"assets/fonts/simsun.ttc",
		"assets/fonts/kaiti.ttf",
	}
}

// FontRegistry locates a script-capable typeface from an ordered candidate
// list. The search-path scan runs at most once per registry; the first
// candidate that both exists and parses as a usable TTF wins, and every
// later render reuses it.
type FontRegistry struct {
	paths []string

	once sync.Once
	data []byte
	path string
	err  error
}

// NewFontRegistry builds a registry over the given candidate paths.
// An empty list falls back to DefaultFontPaths.
func NewFontRegistry(paths []string) *FontRegistry {
	if len(paths) == 0 {
		paths = DefaultFontPaths()
	}
	return &FontRegistry{paths: paths}
}

// Load returns the typeface bytes and the path they came from, scanning the
// candidate list on first use. Concurrent first calls race safely; exactly
// one scan runs and all callers observe its result.
func (r *FontRegistry) Load() ([]byte, string, error) {
	r.once.Do(r.scan)
	return r.data, r.path, r.err
}

func (r *FontRegistry) scan() {
	for _, p := range r.paths {
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if !fontUsable(data) {
			logger.Warn("font candidate rejected", logger.String("path", p))
			continue
		}
		logger.Info("typeface registered", logger.String("path", p))
		r.data = data
		r.path = p
		return
	}
	r.err = types.NewAppErrorWithDetails(types.ErrFontUnavailable,
		"no script-capable typeface found",
		"paths checked: "+strings.Join(r.paths, ", "), nil)
}

// fontUsable checks that the candidate bytes register cleanly with the PDF
// engine, using a throwaway document. A file that exists but does not parse
// (a format the engine cannot embed) is skipped, not fatal.
func fontUsable(data []byte) bool {
	doc := &gopdf.GoPdf{}
	doc.Start(gopdf.Config{
		PageSize: gopdf.Rect{W: 100, H: 100},
		Unit:     gopdf.UnitMM,
	})
	return doc.AddTTFFontData(fontName, data) == nil
}
