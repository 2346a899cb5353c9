package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chriserin/story/internal/parser"
	"github.com/chriserin/story/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <feature>",
	Short: "Show a feature as the runner parses it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := settings(cmd)
		if err != nil {
			return err
		}
		return RunShow(cmd.OutOrStdout(), cfg.Features, args[0])
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// RunShow prints one feature. name may be a path, a file in featuresDir, or
// a file name in featuresDir without the .feature extension.
func RunShow(w io.Writer, featuresDir, name string) error {
	path, err := resolveFeature(featuresDir, name)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	f, err := parser.Parse(path, content)
	if err != nil {
		return err
	}

	ui.ShowHeader(w, filepath.ToSlash(path))
	fmt.Fprintln(w)
	ui.ShowFeature(w, f)
	return nil
}

func resolveFeature(featuresDir, name string) (string, error) {
	candidates := []string{name, filepath.Join(featuresDir, name)}
	if !strings.HasSuffix(name, ".feature") {
		candidates = append(candidates, filepath.Join(featuresDir, name+".feature"))
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c, nil
		}
	}
	return "", fmt.Errorf("feature %s not found", name)
}
