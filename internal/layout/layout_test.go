package layout

import (
	"testing"

	"ritualform/internal/types"
)

func TestToPoints(t *testing.T) {
	tests := []struct {
		mm   float64
		want float64
	}{
		{0, 0},
		{25.4, 72},
		{10, 720.0 / 25.4},
		{210, 210 * 72.0 / 25.4},
	}
	for _, tt := range tests {
		if got := ToPoints(tt.mm); !almostEqual(got, tt.want) {
			t.Errorf("ToPoints(%v) = %v, want %v", tt.mm, got, tt.want)
		}
	}

	// Round trip.
	for _, mm := range []float64{0.5, 68, 200, 330} {
		if got := ToMillimeters(ToPoints(mm)); !almostEqual(got, mm) {
			t.Errorf("round trip for %v mm gave %v", mm, got)
		}
	}
}

func TestPageByName(t *testing.T) {
	tests := []struct {
		name    string
		want    Page
		wantErr bool
	}{
		{"a4", PageA4, false},
		{"A4", PageA4, false},
		{"f4", PageF4, false},
		{"", PageA4, false},
		{"letter", Page{}, true},
	}
	for _, tt := range tests {
		got, err := PageByName(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("PageByName(%q) expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("PageByName(%q) failed: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PageByName(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestParseOffset(t *testing.T) {
	t.Run("valid values", func(t *testing.T) {
		off, err := ParseOffset("1.5", "-2")
		if err != nil {
			t.Fatalf("ParseOffset failed: %v", err)
		}
		if !almostEqual(off.X, 1.5) || !almostEqual(off.Y, -2) {
			t.Errorf("got %+v, want {1.5 -2}", off)
		}
	})

	t.Run("empty reads as zero", func(t *testing.T) {
		off, err := ParseOffset("", "  ")
		if err != nil {
			t.Fatalf("ParseOffset failed: %v", err)
		}
		if off != (Offset{}) {
			t.Errorf("got %+v, want zero offset", off)
		}
	})

	t.Run("rejects non-numbers", func(t *testing.T) {
		for _, bad := range [][2]string{{"abc", "0"}, {"0", "1,5"}, {"--2", "0"}} {
			_, err := ParseOffset(bad[0], bad[1])
			if err == nil {
				t.Errorf("ParseOffset(%q, %q) expected error", bad[0], bad[1])
				continue
			}
			if types.CodeOf(err) != types.ErrInvalidOffset {
				t.Errorf("ParseOffset(%q, %q) code = %v, want INVALID_OFFSET",
					bad[0], bad[1], types.CodeOf(err))
			}
		}
	})
}

func TestGridPoints(t *testing.T) {
	tests := []struct {
		page Page
		step float64
		want int
	}{
		{PageA4, 10, 22 * 30}, // floor(210/10)+1 = 22, floor(297/10)+1 = 30
		{PageA4, 50, 5 * 6},   // floor(210/50)+1 = 5,  floor(297/50)+1 = 6
		{PageF4, 10, 22 * 34}, // floor(215/10)+1 = 22, floor(330/10)+1 = 34
		{PageF4, 50, 5 * 7},   // floor(215/50)+1 = 5,  floor(330/50)+1 = 7
	}
	for _, tt := range tests {
		got := GridPoints(tt.page, tt.step)
		if len(got) != tt.want {
			t.Errorf("GridPoints(%+v, %v): %d points, want %d",
				tt.page, tt.step, len(got), tt.want)
		}
	}

	t.Run("points stay on the page", func(t *testing.T) {
		for _, p := range GridPoints(PageF4, 10) {
			if p.X < 0 || p.X > PageF4.WidthMM || p.Y < 0 || p.Y > PageF4.HeightMM {
				t.Fatalf("point %+v outside page", p)
			}
		}
	})

	t.Run("non-positive step yields nothing", func(t *testing.T) {
		if got := GridPoints(PageA4, 0); got != nil {
			t.Errorf("expected nil for step 0, got %d points", len(got))
		}
	})
}

func TestFieldSpecValue(t *testing.T) {
	values := types.FieldValues{
		types.KeyDesignation: "母親許門",
		types.KeyMandarin:    "梁氏橋玉",
		types.KeySender:      "孝男",
	}

	combined := FieldSpec{Sources: []string{types.KeyDesignation, types.KeyMandarin}}
	if got := combined.Value(values); got != "母親許門梁氏橋玉" {
		t.Errorf("combined value = %q", got)
	}

	single := FieldSpec{Sources: []string{types.KeySender}}
	if got := single.Value(values); got != "孝男" {
		t.Errorf("single value = %q", got)
	}

	missing := FieldSpec{Sources: []string{types.KeyRemark}}
	if got := missing.Value(values); got != "" {
		t.Errorf("missing value = %q, want empty", got)
	}
}

func TestLayoutByName(t *testing.T) {
	compact, err := LayoutByName("compact")
	if err != nil || len(compact) != 5 {
		t.Errorf("compact layout: %d fields, err %v", len(compact), err)
	}
	extended, err := LayoutByName("extended")
	if err != nil || len(extended) != 8 {
		t.Errorf("extended layout: %d fields, err %v", len(extended), err)
	}
	if _, err := LayoutByName("bogus"); err == nil {
		t.Error("expected error for unknown layout")
	}

	// Every source key must resolve against a full record, in both variants.
	rec := types.Record{
		Name: "a", Designation: "b", Mandarin: "c", Romanized: "d",
		Sender: "e", Family: "f", Remark: "g",
		LunarYear: "h", LunarMonth: "i", LunarDay: "j",
	}
	values := rec.Values()
	for _, table := range [][]FieldSpec{compact, extended} {
		for _, f := range table {
			for _, src := range f.Sources {
				if _, ok := values[src]; !ok {
					t.Errorf("field %q references unknown source key %q", f.Key, src)
				}
			}
		}
	}
}
