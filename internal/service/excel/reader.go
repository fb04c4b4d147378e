package excel

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/DavidEgerton1/student-report-generator/internal/model"
)

// ErrMissingStudentCode 表中有数据行但缺少 student_code 列
var ErrMissingStudentCode = errors.New("missing student_code column")

// LoadSheet 打开工作簿并读取一张表；sheetName 为空时读取第一个 sheet
// 文件在返回前关闭。
func LoadSheet(path, sheetName string) (*model.Sheet, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer wb.Close()

	return ReadSheet(wb, sheetName)
}

// ReadSheet 从已打开的工作簿读取一张表
// 首行为表头；student_code 为空的行（空白格式行）跳过。
func ReadSheet(wb *excelize.File, sheetName string) (*model.Sheet, error) {
	if wb == nil {
		return nil, errors.New("workbook is nil")
	}
	if strings.TrimSpace(sheetName) == "" {
		sheets := wb.GetSheetList()
		if len(sheets) == 0 {
			return nil, errors.New("workbook has no sheets")
		}
		sheetName = sheets[0]
	}

	rows, err := wb.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}

	sheet := &model.Sheet{
		Name:    sheetName,
		Columns: []string{},
		Rows:    []model.SheetRow{},
	}
	if len(rows) == 0 {
		return sheet, nil
	}

	header := rows[0]
	colKey := findExactCol(header, model.StudentCodeColumn)

	// 其余列在原表中的下标；空列名无法被引用，直接忽略
	srcCols := make([]int, 0, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if i == colKey || h == "" {
			continue
		}
		sheet.Columns = append(sheet.Columns, h)
		srcCols = append(srcCols, i)
	}

	dates := newDateStyles(wb)
	for i, row := range rows[1:] {
		rowNo := i + 2
		if colKey < 0 {
			if !isBlankRow(row) {
				return nil, fmt.Errorf("sheet %q row %d: %w", sheetName, rowNo, ErrMissingStudentCode)
			}
			continue
		}

		code := getCell(row, colKey)
		if code == "" {
			continue
		}

		values := make([]any, len(srcCols))
		for j, src := range srcCols {
			raw := getCell(row, src)
			if raw == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(src+1, rowNo)
			if err != nil {
				return nil, err
			}
			typ, err := wb.GetCellType(sheetName, cell)
			if err != nil {
				return nil, fmt.Errorf("failed to read cell %s!%s: %w", sheetName, cell, err)
			}
			v := cellValue(typ, raw)
			if serial, ok := v.(float64); ok {
				isDate, err := dates.isDate(sheetName, cell)
				if err != nil {
					return nil, fmt.Errorf("failed to read style of %s!%s: %w", sheetName, cell, err)
				}
				if isDate {
					// 日期格式的数字按日期处理（非数值）
					if t, err := excelize.ExcelDateToTime(serial, false); err == nil {
						v = t
					} else {
						v = raw
					}
				}
			}
			values[j] = v
		}

		sheet.Rows = append(sheet.Rows, model.SheetRow{
			RowNo:       rowNo,
			StudentCode: code,
			Values:      values,
		})
	}

	return sheet, nil
}

// cellValue 按单元格类型还原原始值：文本/日期保持字符串，错误值视为缺失
// 数字单元格是否为日期格式由 dateStyles 另行判断。
func cellValue(typ excelize.CellType, raw string) any {
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeDate:
		return raw
	case excelize.CellTypeBool:
		return raw == "1" || strings.EqualFold(raw, "TRUE")
	case excelize.CellTypeError:
		return nil
	}

	f, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
	if err != nil {
		return raw
	}
	return f
}

func findExactCol(headers []string, want string) int {
	for i, h := range headers {
		if strings.TrimSpace(h) == want {
			return i
		}
	}
	return -1
}

func getCell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func isBlankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// dateStyles 按样式 id 缓存"是否为日期格式"
type dateStyles struct {
	wb    *excelize.File
	cache map[int]bool
}

func newDateStyles(wb *excelize.File) *dateStyles {
	return &dateStyles{wb: wb, cache: make(map[int]bool)}
}

func (d *dateStyles) isDate(sheet, cell string) (bool, error) {
	id, err := d.wb.GetCellStyle(sheet, cell)
	if err != nil {
		return false, err
	}
	if v, ok := d.cache[id]; ok {
		return v, nil
	}
	style, err := d.wb.GetStyle(id)
	if err != nil {
		return false, err
	}
	v := isDateFormat(style.NumFmt, style.CustomNumFmt)
	d.cache[id] = v
	return v, nil
}

// isDateFormat 内置日期/时间格式 id，或自定义格式中含日期时间占位符
func isDateFormat(numFmt int, custom *string) bool {
	if custom != nil && *custom != "" {
		return hasDateToken(*custom)
	}
	switch {
	case numFmt >= 14 && numFmt <= 22,
		numFmt >= 27 && numFmt <= 36,
		numFmt >= 45 && numFmt <= 47,
		numFmt >= 50 && numFmt <= 58:
		return true
	}
	return false
}

// hasDateToken 忽略引号内文本、[颜色] 段和转义字符后查找 y/d/h/s
func hasDateToken(format string) bool {
	inQuote, inBracket, escaped := false, false, false
	for _, r := range strings.ToLower(format) {
		switch {
		case escaped:
			escaped = false
		case r == '\\':
			escaped = true
		case r == '"':
			inQuote = !inQuote
		case inQuote:
		case r == '[':
			inBracket = true
		case r == ']':
			inBracket = false
		case inBracket:
		case r == 'y' || r == 'd' || r == 'h' || r == 's':
			return true
		}
	}
	return false
}
