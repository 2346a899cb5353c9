package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chriserin/story/internal/config"
	"github.com/chriserin/story/internal/exitcodes"
	"github.com/chriserin/story/internal/logging"
	"github.com/chriserin/story/steps"
)

var (
	configFlag   string
	logLevelFlag string

	providers  []steps.Provider
	runContext *steps.Context
)

var rootCmd = &cobra.Command{
	Use:           "story",
	Short:         "story runs plain-text feature files against step definitions",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", config.DefaultFile, "Project configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Diagnostic log level (trace, debug, info, warn, error)")
}

// Execute runs the story command line with the given step providers, in the
// order their definitions should be tried.
func Execute(p ...steps.Provider) {
	ExecuteWith(nil, p...)
}

// ExecuteWith is Execute with a Context preloaded by the caller. The Context
// is shared by every step of the run.
func ExecuteWith(c *steps.Context, p ...steps.Provider) {
	providers = p
	runContext = c
	os.Exit(exitCode(rootCmd.Execute(), rootCmd.ErrOrStderr()))
}

func exitCode(err error, stderr io.Writer) int {
	var bailed *bailedError
	switch {
	case err == nil:
		return exitcodes.Success
	case errors.Is(err, ErrStepsFailed):
		return exitcodes.TestFailure
	case errors.As(err, &bailed):
		return exitcodes.RuntimeErr
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return exitcodes.RuntimeErr
	}
}

// settings resolves the configuration file and flag overrides shared by
// every command.
func settings(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return cfg, nil, err
	}
	level, err := logging.Resolve(logLevelFlag, os.Getenv(logging.EnvVar), cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logging.New(cmd.ErrOrStderr(), level), nil
}
