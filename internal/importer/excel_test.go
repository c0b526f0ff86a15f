package importer

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"ritualform/internal/store"
	"ritualform/internal/types"
)

func writeWorkbook(t *testing.T, dataRows [][]interface{}) string {
	t.Helper()
	wb := excelize.NewFile()
	defer wb.Close()

	// Sheet 1 holds unrelated bookkeeping in the source file; the import
	// reads Sheet 2 only.
	if _, err := wb.NewSheet("Data"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	header := []interface{}{"NO", "NAMA", "PANGGILAN", "ATAS NAMA", "PENYEBUTAN", "DARI", "KELUARGA", "KETERANGAN"}
	rows := append([][]interface{}{header}, dataRows...)
	for i, row := range rows {
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName failed: %v", err)
		}
		if err := wb.SetSheetRow("Data", cellRef, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "segel.xlsx")
	if err := wb.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	return path
}

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "forms.db"))
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestImportXLSX(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{1, "Ibu", "母親許門", "梁氏橋玉", "Nio Kiaw Gek", "孝男", "Ibu Kandung", "合家敬奉"},
		{2, "", "", "", "", "", "", ""},          // both keys blank, skipped
		{3, "Kakek", "祖父", "", "", "外孫女敬奉", "", ""}, // designation only, kept
		{4, "", "", "陳氏", "", "", "", ""},          // mandarin only, kept
	})
	st := openTestStore(t)

	defaults := LunarDefaults{Year: "乙巳", Month: "正月", Day: "十五"}
	n, err := ImportXLSX(path, st, defaults)
	if err != nil {
		t.Fatalf("ImportXLSX failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("imported %d records, want 3", n)
	}

	recs, err := st.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("store holds %d records, want 3", len(recs))
	}
	byDesignation := map[string]types.Record{}
	for _, r := range recs {
		byDesignation[r.Designation] = r
	}
	first, ok := byDesignation["母親許門"]
	if !ok {
		t.Fatal("first data row missing from store")
	}
	if first.Mandarin != "梁氏橋玉" || first.Romanized != "Nio Kiaw Gek" ||
		first.Sender != "孝男" || first.Family != "Ibu Kandung" || first.Remark != "合家敬奉" {
		t.Errorf("imported fields wrong: %+v", first)
	}
	if first.LunarYear != "乙巳" || first.LunarMonth != "正月" || first.LunarDay != "十五" {
		t.Errorf("lunar defaults not applied: %+v", first)
	}
}

func TestImportXLSXTrimsWhitespace(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{1, " Ibu ", " 母親許門 ", "梁氏橋玉", "", "", "", ""},
	})
	st := openTestStore(t)

	if _, err := ImportXLSX(path, st, LunarDefaults{}); err != nil {
		t.Fatalf("ImportXLSX failed: %v", err)
	}
	recs, err := st.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if recs[0].Name != "Ibu" || recs[0].Designation != "母親許門" {
		t.Errorf("whitespace not trimmed: %+v", recs[0])
	}
}

func TestImportXLSXMissingFile(t *testing.T) {
	st := openTestStore(t)
	_, err := ImportXLSX(filepath.Join(t.TempDir(), "absent.xlsx"), st, LunarDefaults{})
	if types.CodeOf(err) != types.ErrImport {
		t.Errorf("code = %v, want IMPORT_ERROR", types.CodeOf(err))
	}
}

func TestImportXLSXSingleSheet(t *testing.T) {
	wb := excelize.NewFile()
	path := filepath.Join(t.TempDir(), "one-sheet.xlsx")
	if err := wb.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	wb.Close()

	st := openTestStore(t)
	_, err := ImportXLSX(path, st, LunarDefaults{})
	if types.CodeOf(err) != types.ErrImport {
		t.Errorf("code = %v, want IMPORT_ERROR", types.CodeOf(err))
	}
}
