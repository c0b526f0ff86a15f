package render

import "golang.org/x/text/width"

// Fullwidth converts halfwidth digits and Latin letters to their fullwidth
// forms so they occupy a full glyph cell in a vertical run. Rune count is
// preserved, so placement geometry is unaffected.
func Fullwidth(s string) string {
	return width.Widen.String(s)
}
