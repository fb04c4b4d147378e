package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DavidEgerton1/student-report-generator/internal/model"
	"github.com/DavidEgerton1/student-report-generator/internal/service/comment"
)

var checkCommentsPath string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a comment bank",
	Long: `Checks that the comment bank has at least one comment for every skill
and every band from 1 to 10.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkCommentsPath, "comments", "", "Comment bank (.json or .yaml)")
	_ = checkCmd.MarkFlagRequired("comments")
}

func runCheck(cmd *cobra.Command, args []string) error {
	bank, err := comment.Load(checkCommentsPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, extra := range comment.ExtraSkills(bank, model.CommentSkills) {
		fmt.Fprintf(out, "unused skill: %s\n", extra)
	}

	missing := comment.Validate(bank, model.CommentSkills)
	if len(missing) == 0 {
		fmt.Fprintln(out, "Comment bank is complete.")
		return nil
	}

	for _, m := range missing {
		fmt.Fprintf(out, "missing: %s\n", m)
	}
	return fmt.Errorf("comment bank is missing %d skill/band entries", len(missing))
}
