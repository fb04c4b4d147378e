package comment

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidEgerton1/student-report-generator/internal/model"
)

func testBank() model.CommentBank {
	return model.CommentBank{
		"Vocabulary": {
			"1":  {"v1-a", "v1-b"},
			"7":  {"v7"},
			"10": {"v10-a", "v10-b", "v10-c"},
		},
	}
}

func TestBand(t *testing.T) {
	t.Parallel()

	cases := map[float64]int{
		-3:   1,
		0:    1,
		0.9:  1,
		1:    1,
		7.99: 7,
		7.0:  7,
		10:   10,
		11:   10,
	}
	for in, want := range cases {
		got, err := Band(in)
		require.NoError(t, err)
		assert.Equal(t, want, got, "Band(%v)", in)
	}

	_, err := Band(math.NaN())
	assert.True(t, errors.Is(err, ErrInvalidScore))
}

func TestSelectClampsToBands(t *testing.T) {
	t.Parallel()

	s := NewSelector(rand.New(rand.NewSource(1)))
	bank := testBank()

	for i := 0; i < 50; i++ {
		high, err := s.Select(model.SkillVocabulary, 11, bank)
		require.NoError(t, err)
		assert.Contains(t, bank["Vocabulary"]["10"], high)

		low, err := s.Select(model.SkillVocabulary, 0, bank)
		require.NoError(t, err)
		assert.Contains(t, bank["Vocabulary"]["1"], low)
	}
}

func TestSelectTruncatesInsteadOfRounding(t *testing.T) {
	t.Parallel()

	got, err := NewSeededSelector(42).Select(model.SkillVocabulary, 7.9, testBank())
	require.NoError(t, err)
	assert.Equal(t, "v7", got)
}

func TestSelectIsReproducibleWithSeed(t *testing.T) {
	t.Parallel()

	bank := testBank()
	pick := func() []string {
		s := NewSeededSelector(7)
		out := make([]string, 0, 20)
		for i := 0; i < 20; i++ {
			c, err := s.Select(model.SkillVocabulary, 10, bank)
			require.NoError(t, err)
			out = append(out, c)
		}
		return out
	}

	assert.Equal(t, pick(), pick())
}

func TestSelectCoversAllCandidates(t *testing.T) {
	t.Parallel()

	s := NewSeededSelector(99)
	seen := map[string]int{}
	for i := 0; i < 300; i++ {
		c, err := s.Select(model.SkillVocabulary, 10, testBank())
		require.NoError(t, err)
		seen[c]++
	}
	assert.Len(t, seen, 3)
}

func TestSelectLookupFailures(t *testing.T) {
	t.Parallel()

	s := NewSeededSelector(1)
	bank := testBank()
	bank["Behavior"] = map[string][]string{"5": {}}

	_, err := s.Select(model.SkillPronunciation, 5, bank)
	assert.True(t, errors.Is(err, ErrCommentNotFound), "missing skill: %v", err)

	_, err = s.Select(model.SkillVocabulary, 5, bank)
	assert.True(t, errors.Is(err, ErrCommentNotFound), "missing band: %v", err)

	_, err = s.Select(model.SkillBehavior, 5, bank)
	assert.True(t, errors.Is(err, ErrCommentNotFound), "empty band: %v", err)
}
