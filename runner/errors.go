package runner

import "fmt"

// NoFeatureFilesError aborts a run that was given nothing to run.
type NoFeatureFilesError struct {
	Dir string
}

func (e *NoFeatureFilesError) Error() string {
	if e.Dir == "" {
		return "no .feature files to run"
	}
	return fmt.Sprintf("no .feature files in %s", e.Dir)
}

// SourceError aborts a run when a feature source cannot be read.
type SourceError struct {
	Name string
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Name, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
