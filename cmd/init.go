package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chriserin/story/internal/config"
	"github.com/chriserin/story/internal/db"
	"github.com/chriserin/story/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the features directory and run history database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := settings(cmd)
		if err != nil {
			return err
		}
		return RunInit(cmd.OutOrStdout(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

const exampleFeature = `Feature: Example
  Replace this file with your own features.

  Scenario: Getting started
    Given a step nobody has defined yet
`

func RunInit(w io.Writer, cfg config.Config) error {
	// features directory, seeded with an example when newly created
	dir := filepath.ToSlash(cfg.Features) + "/"
	if _, err := os.Stat(cfg.Features); err == nil {
		ui.TrkLine(w, dir)
	} else {
		if err := os.MkdirAll(cfg.Features, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", cfg.Features, err)
		}
		ui.NewLine(w, dir)

		example := filepath.Join(cfg.Features, "example.feature")
		if err := os.WriteFile(example, []byte(exampleFeature), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", example, err)
		}
		ui.NewLine(w, filepath.ToSlash(example))
	}

	if !cfg.History {
		return nil
	}

	// database
	_, err := os.Stat(cfg.Database)
	dbExists := err == nil
	sqlDB, err := db.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	sqlDB.Close()
	if dbExists {
		ui.TrkLine(w, cfg.Database)
	} else {
		ui.NewLine(w, cfg.Database)
	}

	msgs, err := ignoreHistory(".gitignore", cfg)
	if err != nil {
		return fmt.Errorf("updating .gitignore: %w", err)
	}
	for _, msg := range msgs {
		fmt.Fprintln(w, msg)
	}

	return nil
}

// ignoreHistory makes sure the history database of cfg, and the -wal and
// -shm files sqlite keeps beside it, are listed in the ignore file at path.
func ignoreHistory(path string, cfg config.Config) ([]string, error) {
	want := []string{filepath.ToSlash(cfg.Database) + "*"}

	data, err := os.ReadFile(path)
	created := os.IsNotExist(err)
	if err != nil && !created {
		return nil, err
	}

	listed := make(map[string]bool)
	for _, line := range strings.Split(string(data), "\n") {
		listed[strings.TrimSpace(line)] = true
	}

	var msgs []string
	if created {
		msgs = append(msgs, path+" created")
	}
	content := string(data)
	for _, entry := range want {
		if listed[entry] {
			msgs = append(msgs, entry+" already in "+path)
			continue
		}
		if content != "" && !strings.HasSuffix(content, "\n") {
			content += "\n"
		}
		content += entry + "\n"
		msgs = append(msgs, entry+" added to "+path)
	}

	if content == string(data) {
		return msgs, nil
	}
	return msgs, os.WriteFile(path, []byte(content), 0o644)
}
