package scoring

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DavidEgerton1/student-report-generator/internal/model"
)

func TestNormalizeValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   any
		want int
	}{
		{"float rounds down", 6.4, 6},
		{"float rounds up", 6.6, 7},
		{"tie to even down", 6.5, 6},
		{"tie to even up", 7.5, 8},
		{"integer", 9, 9},
		{"int64", int64(3), 3},
		{"bool true", true, 1},
		{"nil", nil, 5},
		{"nan", math.NaN(), 5},
		{"inf", math.Inf(1), 5},
		{"text", "absent", 5},
		{"numeric text", "7", 5},
		{"date", time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC), 5},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, NormalizeValue(tc.in, model.DefaultScore))
		})
	}
}

func TestNormalizeKeepsStudentCodeAndFillsShortRows(t *testing.T) {
	t.Parallel()

	sheet := &model.Sheet{
		Name:    "Sheet1",
		Columns: []string{"week_1", "week_2", "note"},
		Rows: []model.SheetRow{
			{RowNo: 2, StudentCode: "S1", Values: []any{8.2, nil, "late"}},
			{RowNo: 3, StudentCode: "S2", Values: []any{3.0}},
		},
	}

	got := Normalize(sheet, model.DefaultScore)

	require.Len(t, got.Rows, 2)
	assert.Equal(t, "S1", got.Rows[0].StudentCode)
	assert.Equal(t, []int{8, 5, 5}, got.Rows[0].Scores)
	assert.Equal(t, []int{3, 5, 5}, got.Rows[1].Scores)
	assert.Equal(t, sheet.Columns, got.Columns)
}

func TestNormalizeIsIdempotent(t *testing.T) {
	t.Parallel()

	sheet := &model.Sheet{
		Columns: []string{"a", "b"},
		Rows: []model.SheetRow{
			{StudentCode: "S1", Values: []any{2.5, "x"}},
			{StudentCode: "S2", Values: []any{nil, 9.9}},
		},
	}

	once := Normalize(sheet, model.DefaultScore)
	twice := Normalize(once.Sheet(), model.DefaultScore)

	assert.Equal(t, once, twice)
}
