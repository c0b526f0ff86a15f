package layout

// GlyphPos is the computed draw position of one glyph, in mm from the
// bottom-left page corner.
type GlyphPos struct {
	Char rune
	X    float64
	Y    float64
}

// PlaceVertical lays out text top-to-bottom: glyph i sits at
// (x+off.X, y+off.Y - i*spacing). The empty string yields an empty slice.
//
// Iteration is by rune. Multi-codepoint grapheme clusters therefore occupy
// one cell per codepoint; for the single-codepoint CJK text this form uses
// that is the intended behavior.
func PlaceVertical(text string, x, y, spacing float64, off Offset) []GlyphPos {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	out := make([]GlyphPos, len(runes))
	for i, r := range runes {
		out[i] = GlyphPos{
			Char: r,
			X:    x + off.X,
			Y:    y + off.Y - float64(i)*spacing,
		}
	}
	return out
}

// PlaceHorizontal lays out text left-to-right: glyph i sits at
// (x+off.X + i*spacing, y+off.Y). Same contract as PlaceVertical.
func PlaceHorizontal(text string, x, y, spacing float64, off Offset) []GlyphPos {
	if text == "" {
		return nil
	}
	runes := []rune(text)
	out := make([]GlyphPos, len(runes))
	for i, r := range runes {
		out[i] = GlyphPos{
			Char: r,
			X:    x + off.X + float64(i)*spacing,
			Y:    y + off.Y,
		}
	}
	return out
}
