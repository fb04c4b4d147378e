package report

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/DavidEgerton1/student-report-generator/internal/model"
	"github.com/DavidEgerton1/student-report-generator/internal/service/comment"
)

// Consolidator 合并两次小测与行为分，并生成评语
type Consolidator struct {
	selector *comment.Selector
	logger   *zap.Logger
}

// NewConsolidator 创建合并器
func NewConsolidator(selector *comment.Selector, logger *zap.Logger) *Consolidator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consolidator{selector: selector, logger: logger}
}

// Consolidate 按第一次小测中的学生顺序输出报表行
// 只出现在一次小测中的学生直接跳过；行为分缺失按 0 计。
func (c *Consolidator) Consolidate(pass1, pass2 *model.TestScores, behavior map[string]float64, bank model.CommentBank) ([]model.ReportRow, error) {
	rows := make([]model.ReportRow, 0, pass1.Len())

	for _, code := range pass1.Codes() {
		second, ok := pass2.Get(code)
		if !ok {
			c.logger.Debug("student missing from mini test 2, skipped", zap.String("student_code", code))
			continue
		}
		first, _ := pass1.Get(code)

		scores := make(model.SkillScores, len(model.ReportSkills))
		for _, skill := range model.TestSkills {
			scores[skill] = (first[skill] + second[skill]) / 2
		}
		scores[model.SkillBehavior] = behavior[code]

		narrative, err := c.Narrative(scores, bank)
		if err != nil {
			return nil, fmt.Errorf("student %s: %w", code, err)
		}

		rows = append(rows, model.ReportRow{
			StudentCode: code,
			Scores:      scores,
			Comment:     narrative,
		})
	}

	return rows, nil
}

// Narrative 拼接评语：开头 + 六项技能 + 结尾，开头/结尾按六项平均分取档
func (c *Consolidator) Narrative(scores model.SkillScores, bank model.CommentBank) (string, error) {
	overall := scores.Mean()
	parts := make([]string, 0, len(model.ReportSkills)+2)

	intro, err := c.selector.Select(model.SkillIntroduction, overall, bank)
	if err != nil {
		return "", err
	}
	parts = append(parts, intro)

	for _, skill := range model.ReportSkills {
		text, err := c.selector.Select(skill, scores[skill], bank)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}

	outro, err := c.selector.Select(model.SkillConclusion, overall, bank)
	if err != nil {
		return "", err
	}
	parts = append(parts, outro)

	return strings.Join(parts, " "), nil
}
