package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chriserin/story/runner"
)

func report(events ...runner.Event) string {
	var buf bytes.Buffer
	r := NewReporter(&buf)
	for _, e := range events {
		r.Update(e)
	}
	return buf.String()
}

func TestReporter_FeatureAndScenario(t *testing.T) {
	out := report(
		runner.Event{Status: runner.FeatureText, Text: []string{"Feature: Login", "  As a member"}},
		runner.Event{Status: runner.ScenarioText, Text: []string{"Scenario: User logs in"}},
		runner.Event{Status: runner.StepPassed, Text: []string{"Given a user"}},
	)

	assert.Equal(t, "\nFeature: Login\n  As a member\n\n  Scenario: User logs in\n    Given a user\n", out)
}

func TestReporter_StepPrefixes(t *testing.T) {
	out := report(
		runner.Event{Status: runner.StepSkipped, Text: []string{"Then skipped"}},
		runner.Event{Status: runner.StepMissing, Text: []string{"Then missing"}},
		runner.Event{Status: runner.StepPending, Text: []string{"Then pending"}},
	)

	assert.Equal(t, "    [skipped] Then skipped\n    [missing] Then missing\n    [pending] Then pending\n", out)
}

func TestReporter_FailedStepShowsError(t *testing.T) {
	out := report(runner.Event{
		Status: runner.StepFailed,
		Text:   []string{"Then it works"},
		Err:    "Error: expected 1\nactual 2",
	})

	assert.Equal(t, "\n    [failed] Then it works\n    Error: expected 1\n    actual 2\n\n", out)
}

func TestReporter_RunDoneSummary(t *testing.T) {
	res := runner.Result{Steps: runner.StepCounts{Passed: 2}}
	out := report(runner.Event{Status: runner.RunDone, Text: res.Summary(), Result: &res})

	assert.Contains(t, out, "Features:  0 ran, 0 passed, 0 failed.")
	assert.Contains(t, out, "Steps:     2 ran, 2 passed, 0 failed, 0 skipped, 0 pending, 0 missing.")
}

func TestReporter_MissingSkeletons(t *testing.T) {
	out := report(runner.Event{
		Status:    runner.RunDone,
		Text:      []string{runner.MissingStepsHeading},
		Skeletons: []runner.Skeleton{runner.NewSkeleton(`I have "3" apples`)},
	})

	assert.Contains(t, out, runner.MissingStepsHeading)
	assert.Contains(t, out, "s.Step(`I have \"arg1\" apples`, func(c *steps.Context) error {\n\treturn steps.ErrPending\n})\n")
}

func TestReporter_RunFailed(t *testing.T) {
	out := report(runner.Event{Status: runner.RunFailed, Err: "no .feature files in features"})
	assert.Equal(t, "Bailing: no .feature files in features\n", out)
}

func TestReporter_UnknownStatusPanics(t *testing.T) {
	assert.Panics(t, func() {
		report(runner.Event{Status: runner.Status("bogus")})
	})
}

func TestSkeletonCode_BacktickPattern(t *testing.T) {
	code := SkeletonCode(runner.Skeleton{Pattern: "run `ls`"})
	assert.Equal(t, `s.Step("run `+"`ls`"+`", func(c *steps.Context) error {`, code[0])
}
