package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/DavidEgerton1/student-report-generator/internal/service/comment"
	"github.com/DavidEgerton1/student-report-generator/internal/service/excel"
)

var sampleOpts struct {
	dir      string
	students int
	weeks    int
	seed     int64
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write sample input files to try the generator",
	RunE:  runSample,
}

func init() {
	def := excel.DefaultSampleOptions()
	f := sampleCmd.Flags()
	f.StringVar(&sampleOpts.dir, "dir", "sample", "Output directory")
	f.IntVar(&sampleOpts.students, "students", def.Students, "Number of students")
	f.IntVar(&sampleOpts.weeks, "weeks", def.Weeks, "Number of weekly behavior columns")
	f.Int64Var(&sampleOpts.seed, "seed", 0, "Random seed (default: time)")
}

func runSample(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(sampleOpts.dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", sampleOpts.dir, err)
	}

	opts := excel.DefaultSampleOptions()
	opts.Students = sampleOpts.students
	opts.Weeks = sampleOpts.weeks

	files, err := excel.NewSampleGenerator(sampleOpts.seed).WriteInputs(sampleOpts.dir, opts)
	if err != nil {
		return err
	}
	commentsPath := filepath.Join(sampleOpts.dir, "comments.json")
	if err := comment.Save(commentsPath, comment.SampleBank()); err != nil {
		return err
	}
	logger.Debug("sample inputs written", zap.String("dir", sampleOpts.dir), zap.Int("students", opts.Students))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Sample files written:")
	for _, p := range []string{files.BehaviorPath, files.MiniTest1Path, files.MiniTest2Path, commentsPath} {
		fmt.Fprintf(out, "  %s\n", p)
	}
	fmt.Fprintf(out, "\nTry:\n  reportgen generate --behavior %s --mini-test-1 %s --mini-test-2 %s --comments %s --output %s\n",
		files.BehaviorPath, files.MiniTest1Path, files.MiniTest2Path, commentsPath,
		filepath.Join(sampleOpts.dir, "Student_Reports.xlsx"))
	return nil
}
