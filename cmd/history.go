package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chriserin/story/internal/db"
	"github.com/chriserin/story/internal/ui"
)

var (
	limitFlag int
	allFlag   bool
)

var historyCmd = &cobra.Command{
	Use:   "history [<run-id>]",
	Short: "Show recent runs, or the steps of one run",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := settings(cmd)
		if err != nil {
			return err
		}
		if len(args) == 0 {
			return RunHistory(cmd.OutOrStdout(), cfg.Database, limitFlag)
		}
		return RunHistoryShow(cmd.OutOrStdout(), cfg.Database, args[0], allFlag)
	},
}

func init() {
	historyCmd.Flags().IntVar(&limitFlag, "limit", 10, "Number of runs to show")
	historyCmd.Flags().BoolVar(&allFlag, "all", false, "Include passed steps")
	rootCmd.AddCommand(historyCmd)
}

func RunHistory(w io.Writer, dbPath string, limit int) error {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("run `story init` first")
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	runs, err := db.RecentRuns(sqlDB, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Runs: %d\n", len(runs))
	for _, run := range runs {
		ui.RunRow(w, run.ID, run.StartedAt, run.Status, runSummary(run))
	}
	return nil
}

func RunHistoryShow(w io.Writer, dbPath, runID string, all bool) error {
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		return fmt.Errorf("run `story init` first")
	}

	sqlDB, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer sqlDB.Close()

	run, err := db.FindRun(sqlDB, runID)
	if err != nil {
		return err
	}

	ui.RunRow(w, run.ID, run.StartedAt, run.Status, runSummary(run))
	if run.Status == "failed" {
		fmt.Fprintf(w, "  Bailing: %s\n", run.Error)
		return nil
	}
	for _, line := range run.Result.Summary() {
		fmt.Fprintln(w, "  "+line)
	}

	results, err := db.RunSteps(sqlDB, run.ID, all)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(w, "no steps to show")
		return nil
	}
	fmt.Fprintln(w)
	for _, s := range results {
		ui.StepRow(w, s.Feature, s.Scenario, s.Step, s.Status, s.Error)
	}
	return nil
}

func runSummary(run db.Run) string {
	if run.Status == "failed" {
		return strings.SplitN(run.Error, "\n", 2)[0]
	}
	s := run.Result.Steps
	return fmt.Sprintf("%d passed, %d failed, %d skipped, %d pending, %d missing",
		s.Passed, s.Failed, s.Skipped, s.Pending, s.Missing)
}
