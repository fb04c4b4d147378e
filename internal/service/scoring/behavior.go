package scoring

import (
	"strings"

	"github.com/DavidEgerton1/student-report-generator/internal/model"
)

// WeekColumns 返回行为表中所有 week_ 开头的列下标
func WeekColumns(columns []string) []int {
	idx := make([]int, 0, len(columns))
	for i, c := range columns {
		if strings.HasPrefix(c, model.WeekColumnPrefix) {
			idx = append(idx, i)
		}
	}
	return idx
}

// BehaviorAverages 计算每个学生的每周行为得分平均值
// 没有任何 week_ 列时平均值为 0；编号重复时以最后一行为准。
func BehaviorAverages(scores *model.ScoreSheet) map[string]float64 {
	weeks := WeekColumns(scores.Columns)
	out := make(map[string]float64, len(scores.Rows))

	for _, row := range scores.Rows {
		if len(weeks) == 0 {
			out[row.StudentCode] = 0
			continue
		}
		sum := 0
		for _, i := range weeks {
			sum += row.Scores[i]
		}
		out[row.StudentCode] = float64(sum) / float64(len(weeks))
	}

	return out
}
