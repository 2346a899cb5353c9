package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/chriserin/story/internal/db"
	"github.com/chriserin/story/internal/ui"
	"github.com/chriserin/story/runner"
	"github.com/chriserin/story/steps"
)

// ErrStepsFailed is returned when a run completes with failed or missing
// steps.
var ErrStepsFailed = errors.New("steps failed or missing")

// bailedError marks an error the reporter has already printed as the reason
// a run was aborted.
type bailedError struct {
	err error
}

func (e *bailedError) Error() string { return e.err.Error() }

func (e *bailedError) Unwrap() error { return e.err }

var (
	featuresFlag  string
	noHistoryFlag bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run every .feature file against the registered step definitions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := settings(cmd)
		if err != nil {
			return err
		}
		opts := RunOptions{
			Features: cfg.Features,
			Database: cfg.Database,
			History:  cfg.History && !noHistoryFlag,
			Context:  runContext,
			Logger:   logger,
		}
		if featuresFlag != "" {
			opts.Features = featuresFlag
		}
		_, err = RunFeatures(cmd.OutOrStdout(), opts, providers)
		return err
	},
}

func init() {
	runCmd.Flags().StringVar(&featuresFlag, "features", "", "Directory of .feature files (overrides config)")
	runCmd.Flags().BoolVar(&noHistoryFlag, "no-history", false, "Do not record this run in the history database")
	rootCmd.AddCommand(runCmd)
}

type RunOptions struct {
	Features string
	Database string
	History  bool
	Context  *steps.Context
	Logger   *slog.Logger
}

// RunFeatures runs the features in opts.Features, reporting to w. It returns
// the run's error when the run was aborted and ErrStepsFailed when any step
// failed or had no definition.
func RunFeatures(w io.Writer, opts RunOptions, providers []steps.Provider) (runner.Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	engine := runner.New(providers, runner.WithLogger(logger))
	engine.Attach(ui.NewReporter(w))

	var recorder *db.Recorder
	if opts.History {
		sqlDB, err := db.Open(opts.Database)
		if err != nil {
			return runner.Result{}, fmt.Errorf("opening database: %w", err)
		}
		defer sqlDB.Close()

		recorder, err = db.NewRecorder(sqlDB)
		if err != nil {
			return runner.Result{}, err
		}
		engine.Attach(recorder)
		logger.Debug("recording run", "run", recorder.RunID(), "database", opts.Database)
	}

	c := opts.Context
	if c == nil {
		c = steps.NewContext(nil)
	}
	result, err := engine.RunDir(c, opts.Features)

	if recorder != nil && recorder.Err() != nil {
		logger.Warn("run history incomplete", "error", recorder.Err())
	}
	if err != nil {
		if engine.Status() == runner.RunFailed {
			return result, &bailedError{err: err}
		}
		return result, err
	}
	if !result.OK() {
		return result, ErrStepsFailed
	}
	return result, nil
}
