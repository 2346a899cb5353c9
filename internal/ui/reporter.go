package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/chriserin/story/runner"
)

// Reporter prints run events to a writer: features flush left, scenarios
// indented one level, steps two.
type Reporter struct {
	w io.Writer
	p palette
}

func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w, p: newPalette(w)}
}

// Update dispatches on the event status. An unknown status is a programming
// error and panics.
func (r *Reporter) Update(e runner.Event) {
	switch e.Status {
	case runner.FeatureText:
		r.output(0, append([]string{""}, e.Text...)...)
	case runner.ScenarioText:
		r.output(1, append([]string{""}, e.Text...)...)
	case runner.StepPassed:
		r.output(2, r.p.passed.Render(first(e.Text)))
	case runner.StepFailed:
		lines := []string{"", r.p.failed.Render("[failed] " + first(e.Text))}
		lines = append(lines, strings.Split(e.Err, "\n")...)
		r.output(2, append(lines, "")...)
	case runner.StepSkipped:
		r.output(2, r.p.skipped.Render("[skipped] "+first(e.Text)))
	case runner.StepMissing:
		r.output(2, r.p.missing.Render("[missing] "+first(e.Text)))
	case runner.StepPending:
		r.output(2, r.p.pending.Render("[pending] "+first(e.Text)))
	case runner.RunDone:
		r.done(e)
	case runner.RunFailed:
		r.output(0, r.p.failed.Render("Bailing: "+e.Err))
	default:
		panic(fmt.Sprintf("ui: unhandled event status %q", e.Status))
	}
}

func (r *Reporter) done(e runner.Event) {
	if len(e.Skeletons) == 0 {
		r.output(0, append([]string{""}, e.Text...)...)
		return
	}
	lines := []string{""}
	for _, t := range e.Text {
		lines = append(lines, r.p.heading.Render(t))
	}
	for _, sk := range e.Skeletons {
		lines = append(lines, "")
		lines = append(lines, SkeletonCode(sk)...)
	}
	r.output(0, lines...)
}

func (r *Reporter) output(indent int, lines ...string) {
	lead := strings.Repeat("  ", indent)
	for _, line := range lines {
		if line == "" {
			fmt.Fprintln(r.w)
			continue
		}
		fmt.Fprintln(r.w, lead+line)
	}
}

func first(text []string) string {
	if len(text) == 0 {
		return ""
	}
	return text[0]
}
