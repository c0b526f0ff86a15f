package layout

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestPlaceVertical(t *testing.T) {
	t.Run("formula per glyph", func(t *testing.T) {
		got := PlaceVertical("母親許門", 68, 200, 12, Offset{})
		if len(got) != 4 {
			t.Fatalf("expected 4 glyphs, got %d", len(got))
		}
		for i, g := range got {
			wantY := 200 - float64(i)*12
			if !almostEqual(g.X, 68) || !almostEqual(g.Y, wantY) {
				t.Errorf("glyph %d: got (%v, %v), want (68, %v)", i, g.X, g.Y, wantY)
			}
		}
	})

	t.Run("two characters reference case", func(t *testing.T) {
		got := PlaceVertical("乙巳", 68, 200, 12, Offset{})
		if !almostEqual(got[0].X, 68) || !almostEqual(got[0].Y, 200) {
			t.Errorf("glyph 0: got (%v, %v), want (68, 200)", got[0].X, got[0].Y)
		}
		if !almostEqual(got[1].X, 68) || !almostEqual(got[1].Y, 188) {
			t.Errorf("glyph 1: got (%v, %v), want (68, 188)", got[1].X, got[1].Y)
		}
	})

	t.Run("empty string yields empty run", func(t *testing.T) {
		if got := PlaceVertical("", 68, 200, 12, Offset{X: 3, Y: -2}); len(got) != 0 {
			t.Errorf("expected empty run, got %d glyphs", len(got))
		}
	})

	t.Run("glyph order follows rune order", func(t *testing.T) {
		got := PlaceVertical("正月", 10, 100, 5, Offset{})
		if got[0].Char != '正' || got[1].Char != '月' {
			t.Errorf("unexpected rune order: %q %q", got[0].Char, got[1].Char)
		}
	})
}

func TestPlaceHorizontal(t *testing.T) {
	t.Run("spacing on X axis only", func(t *testing.T) {
		got := PlaceHorizontal("十五", 170, 55, 6, Offset{})
		if len(got) != 2 {
			t.Fatalf("expected 2 glyphs, got %d", len(got))
		}
		if !almostEqual(got[0].X, 170) || !almostEqual(got[0].Y, 55) {
			t.Errorf("glyph 0: got (%v, %v), want (170, 55)", got[0].X, got[0].Y)
		}
		if !almostEqual(got[1].X, 176) || !almostEqual(got[1].Y, 55) {
			t.Errorf("glyph 1: got (%v, %v), want (176, 55)", got[1].X, got[1].Y)
		}
	})

	t.Run("empty string yields empty run", func(t *testing.T) {
		if got := PlaceHorizontal("", 0, 0, 6, Offset{}); len(got) != 0 {
			t.Errorf("expected empty run, got %d glyphs", len(got))
		}
	})
}

func TestPlacementOffsetLinearity(t *testing.T) {
	offsets := []Offset{
		{X: 0, Y: 0},
		{X: 1.5, Y: -0.5},
		{X: -3.25, Y: 7},
		{X: 0.1, Y: 0.1},
	}

	for _, off := range offsets {
		base := PlaceVertical("孝男合家敬奉", 42, 170, 12, Offset{})
		moved := PlaceVertical("孝男合家敬奉", 42, 170, 12, off)
		for i := range base {
			if !almostEqual(moved[i].X, base[i].X+off.X) || !almostEqual(moved[i].Y, base[i].Y+off.Y) {
				t.Errorf("offset %+v glyph %d: got (%v, %v), want translation of (%v, %v)",
					off, i, moved[i].X, moved[i].Y, base[i].X, base[i].Y)
			}
		}

		hbase := PlaceHorizontal("正月", 140, 80, 6, Offset{})
		hmoved := PlaceHorizontal("正月", 140, 80, 6, off)
		for i := range hbase {
			if !almostEqual(hmoved[i].X, hbase[i].X+off.X) || !almostEqual(hmoved[i].Y, hbase[i].Y+off.Y) {
				t.Errorf("horizontal offset %+v glyph %d mismatch", off, i)
			}
		}
	}
}

func TestFieldSpecPlace(t *testing.T) {
	vertical := FieldSpec{Key: "v", X: 155, Y: 200, Vertical: true, SpacingMM: 14}
	horizontal := FieldSpec{Key: "h", X: 140, Y: 80, SpacingMM: 6}

	v := vertical.Place("乙巳", Offset{})
	if !almostEqual(v[1].Y, 186) {
		t.Errorf("vertical dispatch: glyph 1 Y = %v, want 186", v[1].Y)
	}
	h := horizontal.Place("正月", Offset{})
	if !almostEqual(h[1].X, 146) {
		t.Errorf("horizontal dispatch: glyph 1 X = %v, want 146", h[1].X)
	}
}
