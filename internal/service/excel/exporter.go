package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/DavidEgerton1/student-report-generator/internal/model"
)

// DefaultReportSheet 输出表默认 sheet 名
const DefaultReportSheet = "Sheet1"

// Exporter 汇总报表导出器
type Exporter struct {
	sheetName string
}

// NewExporter 创建导出器；sheetName 为空时使用 Sheet1
func NewExporter(sheetName string) *Exporter {
	if sheetName == "" {
		sheetName = DefaultReportSheet
	}
	return &Exporter{sheetName: sheetName}
}

// Export 将报表行写入新工作簿（不落盘）；出错时工作簿已关闭
func (e *Exporter) Export(rows []model.ReportRow) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := e.write(f, rows); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func (e *Exporter) write(f *excelize.File, rows []model.ReportRow) error {
	if e.sheetName != DefaultReportSheet {
		if err := f.SetSheetName(DefaultReportSheet, e.sheetName); err != nil {
			return fmt.Errorf("failed to rename sheet: %w", err)
		}
	}

	// 设置表头
	headers := model.ReportHeaders()
	headerRow := make([]interface{}, 0, len(headers))
	for _, h := range headers {
		headerRow = append(headerRow, h)
	}
	if err := f.SetSheetRow(e.sheetName, "A1", &headerRow); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", WrapText: true},
	})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetRowStyle(e.sheetName, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}

	// 写入数据
	for i, r := range rows {
		values := make([]interface{}, 0, len(headers))
		values = append(values, r.StudentCode)
		for _, skill := range model.ReportSkills {
			values = append(values, r.Scores[skill])
		}
		values = append(values, r.Comment)

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(e.sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row for %s: %w", r.StudentCode, err)
		}
	}

	return e.layout(f, len(headers), len(rows))
}

// layout 设置列宽：评语列较宽并自动换行
func (e *Exporter) layout(f *excelize.File, cols, rows int) error {
	lastCol, err := excelize.ColumnNumberToName(cols)
	if err != nil {
		return err
	}
	scoreEnd, err := excelize.ColumnNumberToName(cols - 1)
	if err != nil {
		return err
	}

	widths := []struct {
		start, end string
		width      float64
	}{
		{"A", "A", 16},
		{"B", scoreEnd, 14},
		{lastCol, lastCol, 100},
	}
	for _, w := range widths {
		if err := f.SetColWidth(e.sheetName, w.start, w.end, w.width); err != nil {
			return fmt.Errorf("failed to set column width %s:%s: %w", w.start, w.end, err)
		}
	}

	if rows == 0 {
		return nil
	}
	wrapStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{WrapText: true, Vertical: "top"},
	})
	if err != nil {
		return fmt.Errorf("failed to create comment style: %w", err)
	}
	top, _ := excelize.CoordinatesToCellName(cols, 2)
	bottom, _ := excelize.CoordinatesToCellName(cols, rows+1)
	if err := f.SetCellStyle(e.sheetName, top, bottom, wrapStyle); err != nil {
		return fmt.Errorf("failed to style comment column: %w", err)
	}
	return nil
}

// SaveReport 一次性写出工作簿并关闭
func SaveReport(f *excelize.File, path string) error {
	defer f.Close()
	return f.SaveAs(path)
}
