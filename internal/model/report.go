package model

// ReportRow 汇总报表中的一行
type ReportRow struct {
	StudentCode string      `json:"studentCode"`
	Scores      SkillScores `json:"scores"`
	Comment     string      `json:"comment"`
}

// ReportCommentColumn 评语列名
const ReportCommentColumn = "Final Report Comment"

// ReportHeaders 输出表的列顺序
func ReportHeaders() []string {
	headers := []string{StudentCodeColumn}
	for _, s := range ReportSkills {
		headers = append(headers, string(s))
	}
	return append(headers, ReportCommentColumn)
}

// CommentBank 评语库：技能 -> 分档("1".."10") -> 候选评语
type CommentBank map[string]map[string][]string
