package scoring

import (
	"github.com/DavidEgerton1/student-report-generator/internal/model"
)

// ColumnReport 小测表列映射情况（用于日志排查）
type ColumnReport struct {
	Found   []string
	Missing []string
}

// InspectMiniTestColumns 检查小测表包含哪些来源列
func InspectMiniTestColumns(columns []string) ColumnReport {
	present := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		present[c] = struct{}{}
	}

	report := ColumnReport{Found: []string{}, Missing: []string{}}
	for _, m := range model.MiniTestColumns {
		if _, ok := present[m.Column]; ok {
			report.Found = append(report.Found, m.Column)
		} else {
			report.Missing = append(report.Missing, m.Column)
		}
	}
	return report
}

// ExtractSkills 将小测表映射为每个学生的五项技能得分
// 缺失的来源列按默认分处理，不报错。
func ExtractSkills(scores *model.ScoreSheet, def int) *model.TestScores {
	colIndex := make(map[model.Skill]int, len(model.MiniTestColumns))
	for _, m := range model.MiniTestColumns {
		colIndex[m.Skill] = scores.ColumnIndex(m.Column)
	}

	out := model.NewTestScores()
	for _, row := range scores.Rows {
		skills := make(model.SkillScores, len(model.TestSkills))
		for _, skill := range model.TestSkills {
			idx := colIndex[skill]
			if idx < 0 || idx >= len(row.Scores) {
				skills[skill] = float64(def)
				continue
			}
			skills[skill] = float64(row.Scores[idx])
		}
		out.Set(row.StudentCode, skills)
	}

	return out
}
