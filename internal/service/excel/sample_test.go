package excel_test

import (
	"testing"

	"github.com/DavidEgerton1/student-report-generator/internal/model"
	"github.com/DavidEgerton1/student-report-generator/internal/service/excel"
)

func TestSampleInputsAreReadable(t *testing.T) {
	dir := t.TempDir()
	opts := excel.DefaultSampleOptions()
	opts.Students = 5
	opts.Weeks = 3
	opts.Blanks = 0

	files, err := excel.NewSampleGenerator(42).WriteInputs(dir, opts)
	if err != nil {
		t.Fatalf("WriteInputs failed: %v", err)
	}

	behavior, err := excel.LoadSheet(files.BehaviorPath, "")
	if err != nil {
		t.Fatalf("LoadSheet behavior failed: %v", err)
	}
	if len(behavior.Rows) != 5 || len(behavior.Columns) != 4 {
		t.Fatalf("behavior shape = %d rows x %d cols", len(behavior.Rows), len(behavior.Columns))
	}
	if behavior.Rows[0].StudentCode != "S001" {
		t.Fatalf("first student = %q", behavior.Rows[0].StudentCode)
	}

	rec := excel.NewRecognizer()
	if got := rec.RecognizeSheet("behavior.xlsx", behavior).Role; got != model.SheetRoleBehavior {
		t.Fatalf("behavior recognized as %s", got)
	}

	for _, p := range []string{files.MiniTest1Path, files.MiniTest2Path} {
		sheet, err := excel.LoadSheet(p, "")
		if err != nil {
			t.Fatalf("LoadSheet %s failed: %v", p, err)
		}
		if got := rec.RecognizeSheet("mini_test.xlsx", sheet).Role; got != model.SheetRoleMiniTest {
			t.Fatalf("%s recognized as %s", p, got)
		}
		for _, row := range sheet.Rows {
			for _, v := range row.Values {
				f, ok := v.(float64)
				if !ok || f < 1 || f > 10 {
					t.Fatalf("score out of range: %v", v)
				}
			}
		}
	}
}

func TestSampleInputsRejectsZeroStudents(t *testing.T) {
	opts := excel.DefaultSampleOptions()
	opts.Students = 0
	if _, err := excel.NewSampleGenerator(1).WriteInputs(t.TempDir(), opts); err == nil {
		t.Fatalf("expected error for zero students")
	}
}
