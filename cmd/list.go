package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chriserin/story/internal/parser"
	"github.com/chriserin/story/internal/ui"
	"github.com/chriserin/story/runner"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List feature files with their scenario and step counts",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := settings(cmd)
		if err != nil {
			return err
		}
		return RunList(cmd.OutOrStdout(), cfg.Features)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func RunList(w io.Writer, featuresDir string) error {
	if _, err := os.Stat(featuresDir); os.IsNotExist(err) {
		return fmt.Errorf("run `story init` first")
	}

	sources, err := runner.Discover(featuresDir)
	if err != nil {
		return err
	}
	if len(sources) == 0 {
		return &runner.NoFeatureFilesError{Dir: featuresDir}
	}

	var results []parser.Summary
	for _, src := range sources {
		content, err := src.Read()
		if err != nil {
			return fmt.Errorf("reading %s: %w", src.Name(), err)
		}
		f, err := parser.Parse(src.Name(), content)
		if err != nil {
			return err
		}
		results = append(results, parser.Summarize(f))
	}

	// Compute column widths
	fileWidth, nameWidth := 0, 0
	for _, r := range results {
		if len(r.File) > fileWidth {
			fileWidth = len(r.File)
		}
		if len(r.Name) > nameWidth {
			nameWidth = len(r.Name)
		}
	}

	for _, r := range results {
		ui.ListRow(w, r, fileWidth, nameWidth)
	}

	return nil
}
