package runner

import "fmt"

type FeatureCounts struct {
	Passed int
	Failed int
}

type ScenarioCounts struct {
	Passed  int
	Failed  int
	Skipped int
}

type StepCounts struct {
	Passed  int
	Failed  int
	Skipped int
	Missing int
	Pending int
}

// Result holds the counters of one run.
type Result struct {
	Features  FeatureCounts
	Scenarios ScenarioCounts
	Steps     StepCounts
}

// OK reports whether no step failed or went unmatched. Pending and skipped
// steps do not count against a run.
func (r Result) OK() bool {
	return r.Steps.Failed == 0 && r.Steps.Missing == 0
}

// Summary formats the counters as the three report lines.
func (r Result) Summary() []string {
	return []string{
		fmt.Sprintf("Features:  %d ran, %d passed, %d failed.",
			r.Features.Passed+r.Features.Failed,
			r.Features.Passed,
			r.Features.Failed),
		fmt.Sprintf("Scenarios: %d ran, %d passed, %d failed, %d skipped.",
			r.Scenarios.Passed+r.Scenarios.Failed,
			r.Scenarios.Passed,
			r.Scenarios.Failed,
			r.Scenarios.Skipped),
		fmt.Sprintf("Steps:     %d ran, %d passed, %d failed, %d skipped, %d pending, %d missing.",
			r.Steps.Passed+r.Steps.Failed,
			r.Steps.Passed,
			r.Steps.Failed,
			r.Steps.Skipped,
			r.Steps.Pending,
			r.Steps.Missing),
	}
}
