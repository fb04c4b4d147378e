package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DavidEgerton1/student-report-generator/internal/service/comment"
	"github.com/DavidEgerton1/student-report-generator/internal/service/report"
)

// lastOutputKey 最近一次输出路径
const lastOutputKey = "last_output"

var generateOpts struct {
	report.Options
	seed int64
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the student report workbook",
	Example: `  reportgen generate --behavior behavior.xlsx --mini-test-1 mt1.xlsx \
    --mini-test-2 mt2.xlsx --comments comments.json --output Student_Reports.xlsx`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&generateOpts.BehaviorPath, "behavior", "", "Behavior form (.xlsx)")
	f.StringVar(&generateOpts.MiniTest1Path, "mini-test-1", "", "Mini test 1 scores (.xlsx)")
	f.StringVar(&generateOpts.MiniTest2Path, "mini-test-2", "", "Mini test 2 scores (.xlsx)")
	f.StringVar(&generateOpts.CommentsPath, "comments", "", "Comment bank (.json or .yaml)")
	f.StringVarP(&generateOpts.OutputPath, "output", "o", "", "Output workbook (.xlsx)")
	f.Int64Var(&generateOpts.seed, "seed", 0, "Random seed for comment selection (default: config, then time)")

	for _, name := range []string{"behavior", "mini-test-1", "mini-test-2", "comments", "output"} {
		_ = generateCmd.MarkFlagRequired(name)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	seed := cfg.Report.Seed
	if cmd.Flags().Changed("seed") {
		seed = generateOpts.seed
	}

	gen := report.NewGenerator(reportSettings(cfg), comment.NewSeededSelector(seed), logger)

	history, err := openHistory(cfg)
	if err != nil {
		logger.Warn("run history disabled", zap.Error(err))
	}
	if history != nil {
		defer history.Close()
		gen.SetRecorder(history)
	}

	out := cmd.OutOrStdout()
	result, err := gen.Generate(generateOpts.Options, func(e report.ProgressEvent) {
		logger.Debug("progress", zap.Int("percent", e.Percent), zap.String("stage", e.Stage))
	})
	if err != nil {
		return err
	}

	if history != nil {
		if err := history.SetConfig(lastOutputKey, result.OutputPath); err != nil {
			logger.Warn("failed to remember output path", zap.Error(err))
		}
	}

	fmt.Fprintf(out, "Report generated successfully at: %s\n", result.OutputPath)
	fmt.Fprintf(out, "Students: %d", len(result.Rows))
	if result.Skipped > 0 {
		fmt.Fprintf(out, " (skipped %d not present in both mini tests)", result.Skipped)
	}
	fmt.Fprintln(out)
	return nil
}
