package comment

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidEgerton1/student-report-generator/internal/model"
)

func TestLoadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "comments.json")
	content := `{"Vocabulary": {"1": ["Needs more words."], "10": ["Rich vocabulary."]}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	bank, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Rich vocabulary."}, bank["Vocabulary"]["10"])
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "comments.yml")
	content := strings.Join([]string{
		"Behavior:",
		"  \"8\":",
		"    - Polite and focused.",
		"    - A pleasure to teach.",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	bank, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, bank["Behavior"]["8"], 2)
}

func TestLoadRejectsMalformedBank(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "comments.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Vocabulary": ["flat"]}`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "comments.json")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	bank := model.CommentBank{"Vocabulary": {}}
	for band := 1; band <= 9; band++ {
		bank["Vocabulary"][strconv.Itoa(band)] = []string{"x"}
	}
	bank["Vocabulary"]["10"] = []string{}

	missing := Validate(bank, []model.Skill{model.SkillVocabulary, model.SkillBehavior})

	// Vocabulary 的 10 档为空，Behavior 十档全部缺失
	require.Len(t, missing, 11)
	assert.Equal(t, MissingEntry{Skill: model.SkillVocabulary, Band: 10}, missing[0])
	assert.Equal(t, "Behavior/1", missing[1].String())
}

func TestExtraSkills(t *testing.T) {
	t.Parallel()

	bank := model.CommentBank{"Vocabulary": {}, "Vocabulry": {}, "Behaviour": {}}
	assert.Equal(t, []string{"Behaviour", "Vocabulry"}, ExtraSkills(bank, model.CommentSkills))
}
