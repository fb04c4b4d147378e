package scoring

import (
	"math"

	"github.com/DavidEgerton1/student-report-generator/internal/model"
)

// NormalizeValue 将任意单元格值规范为整数得分
// 数值（整型/浮点/布尔）四舍六入五成双取整；缺失、NaN、文本等一律取默认分。
func NormalizeValue(v any, def int) int {
	switch x := v.(type) {
	case nil:
		return def
	case float64:
		return roundScore(x, def)
	case float32:
		return roundScore(float64(x), def)
	case int:
		return x
	case int8:
		return int(x)
	case int16:
		return int(x)
	case int32:
		return int(x)
	case int64:
		return int(x)
	case uint:
		return int(x)
	case uint8:
		return int(x)
	case uint16:
		return int(x)
	case uint32:
		return int(x)
	case uint64:
		return int(x)
	case bool:
		if x {
			return 1
		}
		return 0
	default:
		return def
	}
}

func roundScore(x float64, def int) int {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return def
	}
	return int(math.RoundToEven(x))
}

// Normalize 规范化整张表；student_code 作为关联键保持原样
func Normalize(sheet *model.Sheet, def int) *model.ScoreSheet {
	out := &model.ScoreSheet{
		Name:    sheet.Name,
		Columns: append([]string(nil), sheet.Columns...),
		Rows:    make([]model.ScoreRow, 0, len(sheet.Rows)),
	}

	for _, row := range sheet.Rows {
		scores := make([]int, len(sheet.Columns))
		for i := range scores {
			var v any
			if i < len(row.Values) {
				v = row.Values[i]
			}
			scores[i] = NormalizeValue(v, def)
		}
		out.Rows = append(out.Rows, model.ScoreRow{
			RowNo:       row.RowNo,
			StudentCode: row.StudentCode,
			Scores:      scores,
		})
	}

	return out
}
