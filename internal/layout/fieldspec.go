package layout

import (
	"image/color"
	"strings"

	"ritualform/internal/types"
)

// FieldSpec anchors one logical field on the page. Specs are configuration:
// defined once per layout variant, never mutated at runtime.
type FieldSpec struct {
	Key       string   // field identity, also the preview label
	Sources   []string // record keys concatenated to build the run's text
	X         float64  // anchor X, mm from the left paper edge
	Y         float64  // anchor Y, mm from the bottom paper edge
	Vertical  bool     // vertical top-to-bottom, else horizontal left-to-right
	SpacingMM float64  // inter-glyph spacing along the run axis
	SizePt    float64  // emphasis font size
	Sample    string   // illustrative text for the calibration preview only
	Color     color.RGBA
}

// Value builds the field's render text from a record's values,
// concatenating adjacent source fields for combined runs.
func (f FieldSpec) Value(values types.FieldValues) string {
	var b strings.Builder
	for _, key := range f.Sources {
		b.WriteString(values.Get(key))
	}
	return b.String()
}

// Place computes the glyph run for this field's orientation.
func (f FieldSpec) Place(text string, off Offset) []GlyphPos {
	if f.Vertical {
		return PlaceVertical(text, f.X, f.Y, f.SpacingMM, off)
	}
	return PlaceHorizontal(text, f.X, f.Y, f.SpacingMM, off)
}

// Marker colors for the calibration preview, one per field.
var (
	blue   = color.RGBA{R: 0x15, G: 0x65, B: 0xC0, A: 0xFF}
	green  = color.RGBA{R: 0x2E, G: 0x7D, B: 0x32, A: 0xFF}
	red    = color.RGBA{R: 0xC6, G: 0x28, B: 0x28, A: 0xFF}
	purple = color.RGBA{R: 0x6A, G: 0x1B, B: 0x9A, A: 0xFF}
	orange = color.RGBA{R: 0xE6, G: 0x51, B: 0x00, A: 0xFF}
	teal   = color.RGBA{R: 0x00, G: 0x69, B: 0x5C, A: 0xFF}
	brown  = color.RGBA{R: 0x4E, G: 0x34, B: 0x2E, A: 0xFF}
	indigo = color.RGBA{R: 0x28, G: 0x35, B: 0x93, A: 0xFF}
)

// CompactFields is the five-run layout for the A4 form. The deceased's
// honorific designation and Mandarin name share one vertical run, as do
// the sender line and its remark.
var CompactFields = []FieldSpec{
	{
		Key:       "deceased",
		Sources:   []string{types.KeyDesignation, types.KeyMandarin},
		X:         68, Y: 200,
		Vertical:  true,
		SpacingMM: 12,
		SizePt:    14,
		Sample:    "母親許門梁氏橋玉",
		Color:     blue,
	},
	{
		Key:       "sender",
		Sources:   []string{types.KeySender, types.KeyRemark},
		X:         42, Y: 170,
		Vertical:  true,
		SpacingMM: 12,
		SizePt:    14,
		Sample:    "孝男合家敬奉",
		Color:     green,
	},
	{
		Key:       "lunar_year",
		Sources:   []string{types.KeyLunarYear},
		X:         155, Y: 200,
		Vertical:  true,
		SpacingMM: 14,
		SizePt:    16,
		Sample:    "乙巳",
		Color:     red,
	},
	{
		Key:       "lunar_month",
		Sources:   []string{types.KeyLunarMonth},
		X:         140, Y: 80,
		Vertical:  false,
		SpacingMM: 6,
		SizePt:    14,
		Sample:    "正月",
		Color:     purple,
	},
	{
		Key:       "lunar_day",
		Sources:   []string{types.KeyLunarDay},
		X:         170, Y: 55,
		Vertical:  false,
		SpacingMM: 6,
		SizePt:    14,
		Sample:    "十五",
		Color:     orange,
	},
}

// ExtendedFields is the eight-run layout for the F4 form, which keeps the
// designation, name, romanization and remark in separate runs.
var ExtendedFields = []FieldSpec{
	{
		Key:       "designation",
		Sources:   []string{types.KeyDesignation},
		X:         84, Y: 300,
		Vertical:  true,
		SpacingMM: 12,
		SizePt:    14,
		Sample:    "母親許門",
		Color:     blue,
	},
	{
		Key:       "mandarin",
		Sources:   []string{types.KeyMandarin},
		X:         68, Y: 300,
		Vertical:  true,
		SpacingMM: 12,
		SizePt:    14,
		Sample:    "梁氏橋玉",
		Color:     indigo,
	},
	{
		Key:       "sender",
		Sources:   []string{types.KeySender},
		X:         42, Y: 260,
		Vertical:  true,
		SpacingMM: 12,
		SizePt:    14,
		Sample:    "孝男",
		Color:     green,
	},
	{
		Key:       "remark",
		Sources:   []string{types.KeyRemark},
		X:         28, Y: 260,
		Vertical:  true,
		SpacingMM: 10,
		SizePt:    12,
		Sample:    "合家敬奉",
		Color:     teal,
	},
	{
		Key:       "lunar_year",
		Sources:   []string{types.KeyLunarYear},
		X:         160, Y: 300,
		Vertical:  true,
		SpacingMM: 14,
		SizePt:    16,
		Sample:    "乙巳",
		Color:     red,
	},
	{
		Key:       "lunar_month",
		Sources:   []string{types.KeyLunarMonth},
		X:         145, Y: 90,
		Vertical:  false,
		SpacingMM: 6,
		SizePt:    14,
		Sample:    "正月",
		Color:     purple,
	},
	{
		Key:       "lunar_day",
		Sources:   []string{types.KeyLunarDay},
		X:         175, Y: 60,
		Vertical:  false,
		SpacingMM: 6,
		SizePt:    14,
		Sample:    "十五",
		Color:     orange,
	},
	{
		Key:       "romanized",
		Sources:   []string{types.KeyRomanized},
		X:         30, Y: 40,
		Vertical:  false,
		SpacingMM: 4,
		SizePt:    10,
		Sample:    "Nio Kiaw Gek",
		Color:     brown,
	},
}

// LayoutByName resolves a configured layout variant name to its field table.
func LayoutByName(name string) ([]FieldSpec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "compact":
		return CompactFields, nil
	case "extended":
		return ExtendedFields, nil
	}
	return nil, types.NewAppErrorWithDetails(types.ErrConfig,
		"unknown layout variant", name, nil)
}
