package runner

// Status identifies the kind of an Event.
type Status string

const (
	StepPassed   Status = "step_passed"
	StepFailed   Status = "step_failed"
	StepSkipped  Status = "step_skipped"
	StepMissing  Status = "step_missing"
	StepPending  Status = "step_pending"
	FeatureText  Status = "feature_text"
	ScenarioText Status = "scenario_text"
	RunFailed    Status = "run_failed"
	RunDone      Status = "run_done"
)

// IsStep reports whether s is a per-step outcome.
func (s Status) IsStep() bool {
	switch s {
	case StepPassed, StepFailed, StepSkipped, StepMissing, StepPending:
		return true
	}
	return false
}

// Event is one notification from the Engine.
//
// FeatureText and ScenarioText carry description lines in Text. Step events
// carry the literal step line in Text[0] and, for StepFailed, the failure
// messages in Err. RunFailed carries the aborting error in Err. RunDone is
// sent once with the summary lines in Text and the final counters in Result,
// then, if any steps were missing, a second time with the suggestion heading
// in Text and the skeletons in Skeletons.
type Event struct {
	Status    Status
	Text      []string
	Err       string
	Result    *Result
	Skeletons []Skeleton
}

type Observer interface {
	Update(e Event)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(e Event)

func (f ObserverFunc) Update(e Event) { f(e) }
