package report

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/DavidEgerton1/student-report-generator/internal/model"
	"github.com/DavidEgerton1/student-report-generator/internal/service/comment"
	"github.com/DavidEgerton1/student-report-generator/internal/service/excel"
	"github.com/DavidEgerton1/student-report-generator/internal/service/scoring"
)

// Options 一次生成所需的文件路径
type Options struct {
	BehaviorPath  string
	MiniTest1Path string
	MiniTest2Path string
	CommentsPath  string
	OutputPath    string
}

// Settings 生成参数（来自配置文件）
type Settings struct {
	DefaultScore int    // 缺失值默认分
	InputSheet   string // 输入表 sheet 名，空则取第一个
	OutputSheet  string // 输出表 sheet 名
}

// DefaultSettings 默认生成参数
func DefaultSettings() Settings {
	return Settings{
		DefaultScore: model.DefaultScore,
		OutputSheet:  excel.DefaultReportSheet,
	}
}

// RunRecorder 生成历史记录器（可选）
type RunRecorder interface {
	CreateRun(run *model.Run) error
	FinishRun(run *model.Run) error
}

// Result 生成结果
type Result struct {
	RunID      string            `json:"runId"`
	OutputPath string            `json:"outputPath"`
	Rows       []model.ReportRow `json:"rows"`
	Skipped    int               `json:"skipped"`
	Duration   time.Duration     `json:"duration"`
}

// Generator 报表生成流程：检查文件 -> 读取 -> 规范化 -> 合并 -> 写出
type Generator struct {
	settings     Settings
	consolidator *Consolidator
	recognizer   *excel.Recognizer
	exporter     *excel.Exporter
	recorder     RunRecorder
	logger       *zap.Logger
}

// NewGenerator 创建生成器
func NewGenerator(settings Settings, selector *comment.Selector, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if selector == nil {
		selector = comment.NewSelector(nil)
	}
	return &Generator{
		settings:     settings,
		consolidator: NewConsolidator(selector, logger),
		recognizer:   excel.NewRecognizer(),
		exporter:     excel.NewExporter(settings.OutputSheet),
		logger:       logger,
	}
}

// SetRecorder 设置历史记录器
func (g *Generator) SetRecorder(recorder RunRecorder) {
	g.recorder = recorder
}

// Generate 执行一次完整生成；任何错误都会中止，且不会写出部分结果
func (g *Generator) Generate(opts Options, progress func(ProgressEvent)) (*Result, error) {
	startTime := time.Now()
	run := &model.Run{
		ID:            uuid.New().String(),
		BehaviorFile:  filepath.Base(opts.BehaviorPath),
		MiniTest1File: filepath.Base(opts.MiniTest1Path),
		MiniTest2File: filepath.Base(opts.MiniTest2Path),
		CommentsFile:  filepath.Base(opts.CommentsPath),
		OutputPath:    opts.OutputPath,
		Status:        model.RunStatusProcessing,
		StartedAt:     startTime,
	}
	g.recordStart(run)

	logger := g.logger.With(zap.String("run_id", run.ID))
	result, err := g.generate(opts, progress, logger)

	completed := time.Now()
	run.CompletedAt = &completed
	if err != nil {
		run.Status = model.RunStatusError
		run.ErrorMessage = err.Error()
		g.recordFinish(run)
		logger.Error("report generation failed", zap.Error(err))
		return nil, err
	}

	result.RunID = run.ID
	result.Duration = time.Since(startTime)
	run.Status = model.RunStatusDone
	run.StudentCount = len(result.Rows)
	g.recordFinish(run)

	logger.Info("report generated",
		zap.String("output", result.OutputPath),
		zap.Int("students", len(result.Rows)),
		zap.Int("skipped", result.Skipped),
		zap.Duration("duration", result.Duration),
	)
	return result, nil
}

func (g *Generator) generate(opts Options, progress func(ProgressEvent), logger *zap.Logger) (*Result, error) {
	if strings.TrimSpace(opts.OutputPath) == "" {
		return nil, errors.New("output path is required")
	}

	reportProgress(progress, 0, "checking input files")
	inputs := []struct {
		role Role
		path string
	}{
		{RoleBehavior, opts.BehaviorPath},
		{RoleMiniTest1, opts.MiniTest1Path},
		{RoleMiniTest2, opts.MiniTest2Path},
		{RoleComments, opts.CommentsPath},
	}
	for _, in := range inputs {
		if err := CheckFileAccess(in.role, in.path); err != nil {
			return nil, err
		}
		logger.Debug("input file accessible", zap.String("role", string(in.role)), zap.String("path", in.path))
	}

	reportProgress(progress, 10, "loading behavior form")
	behaviorSheet, err := g.loadSheet(RoleBehavior, opts.BehaviorPath, model.SheetRoleBehavior, logger)
	if err != nil {
		return nil, err
	}

	reportProgress(progress, 20, "loading mini tests")
	mini1Sheet, err := g.loadSheet(RoleMiniTest1, opts.MiniTest1Path, model.SheetRoleMiniTest, logger)
	if err != nil {
		return nil, err
	}
	mini2Sheet, err := g.loadSheet(RoleMiniTest2, opts.MiniTest2Path, model.SheetRoleMiniTest, logger)
	if err != nil {
		return nil, err
	}

	reportProgress(progress, 35, "loading comment bank")
	bank, err := comment.Load(opts.CommentsPath)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", RoleComments, err)
	}

	reportProgress(progress, 45, "computing scores")
	def := g.settings.DefaultScore
	behavior := scoring.BehaviorAverages(scoring.Normalize(behaviorSheet, def))
	pass1 := g.extract(RoleMiniTest1, mini1Sheet, logger)
	pass2 := g.extract(RoleMiniTest2, mini2Sheet, logger)

	reportProgress(progress, 60, "writing comments")
	rows, err := g.consolidator.Consolidate(pass1, pass2, behavior, bank)
	if err != nil {
		return nil, err
	}

	reportProgress(progress, 85, "saving report")
	f, err := g.exporter.Export(rows)
	if err != nil {
		return nil, err
	}
	if err := excel.SaveReport(f, opts.OutputPath); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return nil, &OutputPermissionError{Path: opts.OutputPath, Err: err}
		}
		return nil, fmt.Errorf("failed to save report: %w", err)
	}

	reportProgress(progress, 100, "done")
	return &Result{
		OutputPath: opts.OutputPath,
		Rows:       rows,
		Skipped:    pass1.Len() - len(rows),
	}, nil
}

func (g *Generator) loadSheet(role Role, path string, want model.SheetRole, logger *zap.Logger) (*model.Sheet, error) {
	sheet, err := excel.LoadSheet(path, g.settings.InputSheet)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", role, err)
	}

	rec := g.recognizer.RecognizeSheet(filepath.Base(path), sheet)
	if rec.Role != want && rec.Role != model.SheetRoleUnknown {
		logger.Warn("input file looks like a different form",
			zap.String("role", string(role)),
			zap.String("path", path),
			zap.String("recognized", string(rec.Role)),
			zap.Float64("score", rec.Score),
		)
	}

	logger.Debug("sheet loaded",
		zap.String("role", string(role)),
		zap.String("sheet", sheet.Name),
		zap.Strings("columns", sheet.Columns),
		zap.Int("rows", len(sheet.Rows)),
	)
	return sheet, nil
}

func (g *Generator) extract(role Role, sheet *model.Sheet, logger *zap.Logger) *model.TestScores {
	cols := scoring.InspectMiniTestColumns(sheet.Columns)
	if len(cols.Missing) > 0 {
		logger.Info("mini test columns missing, using default score",
			zap.String("role", string(role)),
			zap.Strings("missing", cols.Missing),
			zap.Int("default", g.settings.DefaultScore),
		)
	}
	return scoring.ExtractSkills(scoring.Normalize(sheet, g.settings.DefaultScore), g.settings.DefaultScore)
}

// CheckFileAccess 确认输入文件可以打开
func CheckFileAccess(role Role, path string) error {
	if strings.TrimSpace(path) == "" {
		return &FileAccessError{Role: role, Path: path, Err: errors.New("no file selected")}
	}
	f, err := os.Open(path)
	if err != nil {
		return &FileAccessError{Role: role, Path: path, Err: err}
	}
	return f.Close()
}

func (g *Generator) recordStart(run *model.Run) {
	if g.recorder == nil {
		return
	}
	if err := g.recorder.CreateRun(run); err != nil {
		g.logger.Warn("failed to record run", zap.String("run_id", run.ID), zap.Error(err))
	}
}

func (g *Generator) recordFinish(run *model.Run) {
	if g.recorder == nil {
		return
	}
	if err := g.recorder.FinishRun(run); err != nil {
		g.logger.Warn("failed to update run", zap.String("run_id", run.ID), zap.Error(err))
	}
}
