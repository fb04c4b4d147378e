package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidEgerton1/student-report-generator/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRunLifecycle(t *testing.T) {
	s := newTestStore(t)

	started := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	run := &model.Run{
		ID:            "run-1",
		BehaviorFile:  "behavior.xlsx",
		MiniTest1File: "mini1.xlsx",
		MiniTest2File: "mini2.xlsx",
		CommentsFile:  "comments.json",
		OutputPath:    "/tmp/out.xlsx",
		Status:        model.RunStatusProcessing,
		StartedAt:     started,
	}
	require.NoError(t, s.CreateRun(run))

	got, err := s.GetRun("run-1")
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusProcessing, got.Status)
	assert.Nil(t, got.CompletedAt)
	assert.True(t, got.StartedAt.Equal(started))

	completed := started.Add(2 * time.Second)
	run.Status = model.RunStatusDone
	run.StudentCount = 24
	run.CompletedAt = &completed
	require.NoError(t, s.FinishRun(run))

	got, err = s.GetRun("run-1")
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusDone, got.Status)
	assert.Equal(t, 24, got.StudentCount)
	assert.Equal(t, "comments.json", got.CommentsFile)
	require.NotNil(t, got.CompletedAt)
	assert.True(t, got.CompletedAt.Equal(completed))
}

func TestFinishRunUnknownID(t *testing.T) {
	s := newTestStore(t)

	err := s.FinishRun(&model.Run{ID: "missing", Status: model.RunStatusError})
	require.Error(t, err)
}

func TestListRunsNewestFirst(t *testing.T) {
	s := newTestStore(t)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, id := range []string{"a", "b", "c"} {
		require.NoError(t, s.CreateRun(&model.Run{
			ID:        id,
			Status:    model.RunStatusDone,
			StartedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	runs, err := s.ListRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "c", runs[0].ID)
	assert.Equal(t, "b", runs[1].ID)

	n, err := s.CountRuns()
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestConfigValues(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.GetConfig("last_comments")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.SetConfig("last_comments", "a.json"))
	require.NoError(t, s.SetConfig("last_comments", "b.json"))

	v, ok, err := s.GetConfig("last_comments")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "b.json", v)
}
