package comment

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/DavidEgerton1/student-report-generator/internal/model"
)

// bandPhrases 各分档的评价用语（下标 0 对应 1 档）
var bandPhrases = [model.MaxBand]string{
	"is finding %s very difficult and needs a lot of support",
	"is struggling with %s and needs regular support",
	"is beginning to develop %s",
	"is making slow but steady progress in %s",
	"shows an acceptable level of %s",
	"is developing good %s",
	"shows solid %s",
	"shows strong %s",
	"shows excellent %s",
	"shows outstanding %s",
}

var skillTopics = map[model.Skill]string{
	model.SkillPronunciation:     "pronunciation and intonation",
	model.SkillCommunication:     "communication skills",
	model.SkillVocabulary:        "vocabulary",
	model.SkillListeningDetail:   "listening for detail",
	model.SkillListeningMainIdea: "listening for the main idea",
	model.SkillBehavior:          "classroom behavior",
}

// SampleBank 生成一份覆盖全部技能与分档的示例评语库
func SampleBank() model.CommentBank {
	bank := make(model.CommentBank, len(model.CommentSkills))
	for _, skill := range model.CommentSkills {
		bands := make(map[string][]string, model.MaxBand)
		for b := model.MinBand; b <= model.MaxBand; b++ {
			bands[strconv.Itoa(b)] = sampleComments(skill, b)
		}
		bank[string(skill)] = bands
	}
	return bank
}

func sampleComments(skill model.Skill, band int) []string {
	switch skill {
	case model.SkillIntroduction:
		return []string{
			fmt.Sprintf("This term the student's overall work was at level %d.", band),
			fmt.Sprintf("Overall, the student has worked at level %d this term.", band),
		}
	case model.SkillConclusion:
		if band >= 7 {
			return []string{"Keep up the great work next term!", "Well done this term."}
		}
		return []string{"With more practice, next term can be even better.", "Keep trying hard next term."}
	}

	phrase := fmt.Sprintf(bandPhrases[band-1], skillTopics[skill])
	return []string{
		"The student " + phrase + ".",
		"In class, the student " + phrase + ".",
	}
}

// Save 按扩展名写出评语库（.yaml/.yml 为 YAML，其余为 JSON）
func Save(path string, bank model.CommentBank) error {
	var (
		data []byte
		err  error
	)
	switch FormatFromPath(path) {
	case FormatYAML:
		data, err = yaml.Marshal(bank)
	default:
		data, err = json.MarshalIndent(bank, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to encode comment bank: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
