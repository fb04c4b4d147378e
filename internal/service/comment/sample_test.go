package comment

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidEgerton1/student-report-generator/internal/model"
)

func TestSampleBankIsComplete(t *testing.T) {
	bank := SampleBank()
	assert.Empty(t, Validate(bank, model.CommentSkills))
	assert.Empty(t, ExtraSkills(bank, model.CommentSkills))
}

func TestSaveAndLoad(t *testing.T) {
	for _, name := range []string{"bank.json", "bank.yaml"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, Save(path, SampleBank()))

		loaded, err := Load(path)
		require.NoError(t, err, name)
		assert.Equal(t, SampleBank(), loaded, name)
	}
}
