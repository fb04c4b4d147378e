package model

// Skill 评语库中的技能名称（同时作为报表列名）
type Skill string

const (
	SkillPronunciation     Skill = "Pronunciation"
	SkillCommunication     Skill = "Communication & Interaction"
	SkillVocabulary        Skill = "Vocabulary"
	SkillListeningDetail   Skill = "Listening for Detail"
	SkillListeningMainIdea Skill = "Listening for Main Idea"
	SkillBehavior          Skill = "Behavior"

	// 仅用于评语开头/结尾，不出现在报表列中
	SkillIntroduction Skill = "Introduction"
	SkillConclusion   Skill = "Conclusion"
)

// TestSkills 小测中考察的五项技能（固定顺序）
var TestSkills = []Skill{
	SkillPronunciation,
	SkillCommunication,
	SkillVocabulary,
	SkillListeningDetail,
	SkillListeningMainIdea,
}

// ReportSkills 报表中的六项得分，顺序即评语拼接顺序
var ReportSkills = []Skill{
	SkillPronunciation,
	SkillCommunication,
	SkillVocabulary,
	SkillListeningDetail,
	SkillListeningMainIdea,
	SkillBehavior,
}

// CommentSkills 评语库必须覆盖的全部技能
var CommentSkills = []Skill{
	SkillIntroduction,
	SkillPronunciation,
	SkillCommunication,
	SkillVocabulary,
	SkillListeningDetail,
	SkillListeningMainIdea,
	SkillBehavior,
	SkillConclusion,
}

// SkillColumn 小测原始列名到技能的映射项
type SkillColumn struct {
	Column string
	Skill  Skill
}

// MiniTestColumns 小测表的固定列映射
var MiniTestColumns = []SkillColumn{
	{Column: "pronunciation_and_intonation", Skill: SkillPronunciation},
	{Column: "fluency_coherence", Skill: SkillCommunication},
	{Column: "vocab_and_lang", Skill: SkillVocabulary},
	{Column: "listening_section_1", Skill: SkillListeningDetail},
	{Column: "listening_section_2", Skill: SkillListeningMainIdea},
}

const (
	// StudentCodeColumn 三张输入表共用的学生编号列
	StudentCodeColumn = "student_code"

	// WeekColumnPrefix 行为表中每周得分列的前缀
	WeekColumnPrefix = "week_"

	// DefaultScore 缺失值/缺失列的默认分
	DefaultScore = 5

	// 评语分档范围
	MinBand = 1
	MaxBand = 10
)

// SkillScores 单个学生的技能得分
type SkillScores map[Skill]float64

// Mean 所有得分的算术平均；空集合返回 0
func (s SkillScores) Mean() float64 {
	if len(s) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s {
		sum += v
	}
	return sum / float64(len(s))
}

// TestScores 一次小测的得分，按学生首次出现的顺序保存
type TestScores struct {
	order  []string
	scores map[string]SkillScores
}

// NewTestScores 创建空的小测得分集合
func NewTestScores() *TestScores {
	return &TestScores{
		scores: make(map[string]SkillScores),
	}
}

// Set 写入学生得分；重复编号保留首次位置，数值以最后一次为准
func (t *TestScores) Set(code string, scores SkillScores) {
	if _, ok := t.scores[code]; !ok {
		t.order = append(t.order, code)
	}
	t.scores[code] = scores
}

// Get 获取学生得分
func (t *TestScores) Get(code string) (SkillScores, bool) {
	s, ok := t.scores[code]
	return s, ok
}

// Codes 按插入顺序返回学生编号
func (t *TestScores) Codes() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len 学生数
func (t *TestScores) Len() int {
	return len(t.order)
}
