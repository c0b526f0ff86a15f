// Package importer bulk-loads certificate records from the operator's
// source spreadsheet.
package importer

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"ritualform/internal/logger"
	"ritualform/internal/store"
	"ritualform/internal/types"
)

// LunarDefaults holds the lunar date applied to every imported record.
// The spreadsheet carries no date columns, so the operator supplies the
// current ritual date once per import.
type LunarDefaults struct {
	Year  string
	Month string
	Day   string
}

// Sheet 2 column order: A=NO, B=NAMA, C=PANGGILAN, D=ATAS NAMA,
// E=PENYEBUTAN, F=DARI, G=KELUARGA, H=KETERANGAN.
const (
	colName        = 1
	colDesignation = 2
	colMandarin    = 3
	colRomanized   = 4
	colSender      = 5
	colFamily      = 6
	colRemark      = 7
)

// ImportXLSX reads the second sheet of the workbook at path, skipping the
// header row and any row whose designation and Mandarin name are both
// empty, and creates one record per surviving row. It returns the number
// of records imported.
func ImportXLSX(path string, st *store.Store, defaults LunarDefaults) (int, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return 0, types.NewAppErrorWithDetails(types.ErrImport, "无法打开 Excel 文件", path, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) < 2 {
		return 0, types.NewAppErrorWithDetails(types.ErrImport, "Excel 文件缺少第二个工作表", path, nil)
	}

	rows, err := wb.GetRows(sheets[1])
	if err != nil {
		return 0, types.NewAppError(types.ErrImport, "读取工作表失败", err)
	}

	count := 0
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		rec := rowToRecord(row, defaults)
		if rec.Designation == "" && rec.Mandarin == "" {
			continue
		}
		if _, err := st.Create(rec); err != nil {
			return count, types.NewAppError(types.ErrImport, "导入记录失败", err)
		}
		count++
	}

	logger.Info("Excel 导入完成",
		logger.String("path", path),
		logger.Int("imported", count),
	)
	return count, nil
}

func rowToRecord(row []string, defaults LunarDefaults) types.Record {
	return types.Record{
		Name:        cell(row, colName),
		Designation: cell(row, colDesignation),
		Mandarin:    cell(row, colMandarin),
		Romanized:   cell(row, colRomanized),
		Sender:      cell(row, colSender),
		Family:      cell(row, colFamily),
		Remark:      cell(row, colRemark),
		LunarYear:   defaults.Year,
		LunarMonth:  defaults.Month,
		LunarDay:    defaults.Day,
	}
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
