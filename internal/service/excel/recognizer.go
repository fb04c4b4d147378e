package excel

import (
	"strings"

	"github.com/DavidEgerton1/student-report-generator/internal/model"
)

type headerRequirement struct {
	Key   string
	Match func(header string) bool
}

type sheetRule struct {
	Role         model.SheetRole
	Requirements []headerRequirement
	NameBoost    func(name string) float64
}

// Recognizer 根据表头识别输入表角色（行为表/小测表）
type Recognizer struct {
	rules []*sheetRule
}

// NewRecognizer 创建识别器
func NewRecognizer() *Recognizer {
	return &Recognizer{rules: defaultSheetRules()}
}

// Recognize 识别一张表；name 一般为文件名或 sheet 名
// 识别结果只用于提示用户可能选错了文件，不影响生成。
func (r *Recognizer) Recognize(name string, columns []string) model.SheetRecognition {
	headers := make([]string, 0, len(columns)+1)
	headers = append(headers, model.StudentCodeColumn)
	for _, c := range columns {
		if v := strings.ToLower(strings.TrimSpace(c)); v != "" {
			headers = append(headers, v)
		}
	}

	best := model.SheetRecognition{
		SheetName:     name,
		Role:          model.SheetRoleUnknown,
		MissingFields: []string{},
	}
	for _, rule := range r.rules {
		score, missing := scoreRule(rule, strings.ToLower(name), headers)
		if score > best.Score {
			best.Role = rule.Role
			best.Score = score
			best.MissingFields = missing
		}
	}

	if best.Score <= 0.50 {
		best.Role = model.SheetRoleUnknown
	}
	return best
}

// RecognizeSheet 识别已读取的表（student_code 已在读取时校验）
func (r *Recognizer) RecognizeSheet(name string, sheet *model.Sheet) model.SheetRecognition {
	return r.Recognize(name, sheet.Columns)
}

func scoreRule(rule *sheetRule, name string, headers []string) (float64, []string) {
	hit := 0
	missing := make([]string, 0, len(rule.Requirements))
	for _, req := range rule.Requirements {
		ok := false
		for _, h := range headers {
			if req.Match(h) {
				ok = true
				break
			}
		}
		if ok {
			hit++
		} else {
			missing = append(missing, req.Key)
		}
	}

	if len(rule.Requirements) == 0 {
		return 0, missing
	}

	score := float64(hit) / float64(len(rule.Requirements))
	if rule.NameBoost != nil {
		score += rule.NameBoost(name)
	}
	if score > 1.0 {
		score = 1.0
	}
	return score, missing
}

func defaultSheetRules() []*sheetRule {
	reqExact := func(key string) headerRequirement {
		return headerRequirement{
			Key:   key,
			Match: func(h string) bool { return h == key },
		}
	}
	reqPrefix := func(key, prefix string) headerRequirement {
		return headerRequirement{
			Key:   key,
			Match: func(h string) bool { return strings.HasPrefix(h, prefix) },
		}
	}
	boostByKeyword := func(boost float64, keywords ...string) func(string) float64 {
		return func(name string) float64 {
			for _, kw := range keywords {
				if strings.Contains(name, kw) {
					return boost
				}
			}
			return 0
		}
	}

	behavior := []headerRequirement{
		reqExact(model.StudentCodeColumn),
		reqPrefix(model.WeekColumnPrefix+"*", model.WeekColumnPrefix),
	}

	miniTest := []headerRequirement{reqExact(model.StudentCodeColumn)}
	for _, m := range model.MiniTestColumns {
		miniTest = append(miniTest, reqExact(m.Column))
	}

	return []*sheetRule{
		{
			Role:         model.SheetRoleBehavior,
			Requirements: behavior,
			NameBoost:    boostByKeyword(0.2, "behavior", "behaviour"),
		},
		{
			Role:         model.SheetRoleMiniTest,
			Requirements: miniTest,
			NameBoost:    boostByKeyword(0.2, "mini", "test"),
		},
	}
}
