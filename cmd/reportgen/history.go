package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DavidEgerton1/student-report-generator/internal/store"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List recent report runs, or show one run",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", store.DefaultRunLimit, "Number of runs to show")
}

func runHistory(cmd *cobra.Command, args []string) error {
	history, err := openHistory(cfg)
	if err != nil {
		return err
	}
	if history == nil {
		return errors.New("run history is disabled ([data] history = false)")
	}
	defer history.Close()

	if len(args) == 1 {
		return showRun(cmd, history, args[0])
	}

	runs, err := history.ListRuns(historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	fmt.Fprintf(out, "%-36s  %-20s  %-10s  %8s  %s\n", "ID", "STARTED", "STATUS", "STUDENTS", "OUTPUT")
	for _, r := range runs {
		fmt.Fprintf(out, "%-36s  %-20s  %-10s  %8d  %s\n",
			r.ID, r.StartedAt.Local().Format("2006-01-02 15:04:05"), r.Status, r.StudentCount, r.OutputPath)
		if r.ErrorMessage != "" {
			fmt.Fprintf(out, "    error: %s\n", r.ErrorMessage)
		}
	}

	if last, ok, err := history.GetConfig(lastOutputKey); err == nil && ok {
		fmt.Fprintf(out, "\nLast report: %s\n", last)
	}
	return nil
}

// showRun 输出单次生成的详细信息
func showRun(cmd *cobra.Command, history *store.Store, id string) error {
	r, err := history.GetRun(id)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run:          %s\n", r.ID)
	fmt.Fprintf(out, "Status:       %s\n", r.Status)
	fmt.Fprintf(out, "Started:      %s\n", r.StartedAt.Local().Format("2006-01-02 15:04:05"))
	if r.CompletedAt != nil {
		fmt.Fprintf(out, "Completed:    %s\n", r.CompletedAt.Local().Format("2006-01-02 15:04:05"))
	}
	fmt.Fprintf(out, "Behavior:     %s\n", r.BehaviorFile)
	fmt.Fprintf(out, "Mini Test 1:  %s\n", r.MiniTest1File)
	fmt.Fprintf(out, "Mini Test 2:  %s\n", r.MiniTest2File)
	fmt.Fprintf(out, "Comments:     %s\n", r.CommentsFile)
	fmt.Fprintf(out, "Output:       %s\n", r.OutputPath)
	fmt.Fprintf(out, "Students:     %d\n", r.StudentCount)
	if r.ErrorMessage != "" {
		fmt.Fprintf(out, "Error:        %s\n", r.ErrorMessage)
	}
	return nil
}
