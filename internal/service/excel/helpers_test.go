package excel_test

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook 构造单 sheet 工作簿：首行表头，其余为数据行
func buildWorkbook(t *testing.T, sheet string, headers []string, rows ...[]interface{}) *excelize.File {
	t.Helper()

	wb := excelize.NewFile()
	if sheet != "Sheet1" {
		if err := wb.SetSheetName("Sheet1", sheet); err != nil {
			t.Fatalf("SetSheetName failed: %v", err)
		}
	}

	header := make([]interface{}, 0, len(headers))
	for _, h := range headers {
		header = append(header, h)
	}
	if err := wb.SetSheetRow(sheet, "A1", &header); err != nil {
		t.Fatalf("SetSheetRow header failed: %v", err)
	}

	for i, row := range rows {
		row := row
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := wb.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow %s failed: %v", cell, err)
		}
	}

	return wb
}

func saveWorkbook(t *testing.T, wb *excelize.File, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := wb.SaveAs(path); err != nil {
		t.Fatalf("SaveAs failed: %v", err)
	}
	_ = wb.Close()
	return path
}
