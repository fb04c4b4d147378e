package excel

import (
	"fmt"
	"math"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/DavidEgerton1/student-report-generator/internal/model"
)

// 示例输入文件名
const (
	SampleBehaviorFile  = "behavior.xlsx"
	SampleMiniTest1File = "mini_test_1.xlsx"
	SampleMiniTest2File = "mini_test_2.xlsx"
)

// SampleOptions 示例数据参数
type SampleOptions struct {
	Students int     // 学生数
	Weeks    int     // 行为表周数
	Variance float64 // 两次小测间的波动幅度（分）
	Blanks   float64 // 留空单元格的比例
}

// DefaultSampleOptions 默认示例参数
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{
		Students: 20,
		Weeks:    8,
		Variance: 1.5,
		Blanks:   0.05,
	}
}

// SampleFiles 生成的示例文件路径
type SampleFiles struct {
	BehaviorPath  string
	MiniTest1Path string
	MiniTest2Path string
}

// SampleGenerator 示例输入生成器（演示、联调用）
type SampleGenerator struct {
	rng *rand.Rand
}

// NewSampleGenerator 创建生成器；seed 为 0 时按时间随机
func NewSampleGenerator(seed int64) *SampleGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SampleGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// WriteInputs 在 dir 下写出行为表与两次小测表
func (g *SampleGenerator) WriteInputs(dir string, opts SampleOptions) (*SampleFiles, error) {
	if opts.Students <= 0 {
		return nil, fmt.Errorf("invalid student count: %d", opts.Students)
	}
	if opts.Weeks <= 0 {
		opts.Weeks = 1
	}

	codes := make([]string, opts.Students)
	ability := make([]float64, opts.Students)
	for i := range codes {
		codes[i] = fmt.Sprintf("S%03d", i+1)
		ability[i] = g.randomInRange(3, 9.5)
	}

	files := &SampleFiles{
		BehaviorPath:  filepath.Join(dir, SampleBehaviorFile),
		MiniTest1Path: filepath.Join(dir, SampleMiniTest1File),
		MiniTest2Path: filepath.Join(dir, SampleMiniTest2File),
	}

	// 行为表：student_code + week_1..week_N + 备注列
	headers := []string{model.StudentCodeColumn}
	for w := 1; w <= opts.Weeks; w++ {
		headers = append(headers, fmt.Sprintf("%s%d", model.WeekColumnPrefix, w))
	}
	headers = append(headers, "notes")

	rows := make([][]interface{}, 0, opts.Students)
	for i, code := range codes {
		row := []interface{}{code}
		for w := 0; w < opts.Weeks; w++ {
			row = append(row, g.score(ability[i], 1.5, opts.Blanks))
		}
		rows = append(rows, append(row, ""))
	}
	if err := writeSampleSheet(files.BehaviorPath, headers, rows); err != nil {
		return nil, err
	}

	// 小测表：第二次在第一次的基础上波动
	testHeaders := []string{model.StudentCodeColumn}
	for _, col := range model.MiniTestColumns {
		testHeaders = append(testHeaders, col.Column)
	}
	for _, p := range []struct {
		path  string
		drift float64
	}{
		{files.MiniTest1Path, 0},
		{files.MiniTest2Path, opts.Variance},
	} {
		rows := make([][]interface{}, 0, opts.Students)
		for i, code := range codes {
			row := []interface{}{code}
			for range model.MiniTestColumns {
				row = append(row, g.score(ability[i], 1+p.drift, opts.Blanks))
			}
			rows = append(rows, row)
		}
		if err := writeSampleSheet(p.path, testHeaders, rows); err != nil {
			return nil, err
		}
	}

	return files, nil
}

// score 围绕 base 波动的整数分（1-10），按比例返回空值
func (g *SampleGenerator) score(base, spread, blanks float64) interface{} {
	if blanks > 0 && g.rng.Float64() < blanks {
		return nil
	}
	v := math.Round(base + (g.rng.Float64()-0.5)*spread*2)
	return math.Max(1, math.Min(10, v))
}

// randomInRange 在范围内生成随机数
func (g *SampleGenerator) randomInRange(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

func writeSampleSheet(path string, headers []string, rows [][]interface{}) error {
	f := excelize.NewFile()

	header := make([]interface{}, 0, len(headers))
	for _, h := range headers {
		header = append(header, h)
	}
	if err := f.SetSheetRow(DefaultReportSheet, "A1", &header); err != nil {
		f.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, row := range rows {
		row := row
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(DefaultReportSheet, cell, &row); err != nil {
			f.Close()
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return SaveReport(f, path)
}
