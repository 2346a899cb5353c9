package parser

import (
	"fmt"
	"strings"
)

// Feature is one parsed .feature file.
type Feature struct {
	File        string
	Description []string // first line is the Feature: header
	Scenarios   []*Scenario
}

// Title returns the header text after the Feature: keyword.
func (f *Feature) Title() string {
	if len(f.Description) == 0 {
		return ""
	}
	return strings.TrimSpace(f.Description[0][len("Feature:"):])
}

type Scenario struct {
	Description []string // first line is the Scenario: header
	Steps       []Step
	Line        int // 1-based line number of Scenario: line

	seen map[string]struct{}
}

// Title returns the header text after the Scenario: keyword.
func (s *Scenario) Title() string {
	if len(s.Description) == 0 {
		return ""
	}
	return strings.TrimSpace(s.Description[0][len("Scenario:"):])
}

// addStep appends step unless a step with the same literal text is already
// present. Steps are keyed by their full line, so repeated lines collapse
// into the first occurrence.
func (s *Scenario) addStep(step Step) bool {
	if s.seen == nil {
		s.seen = make(map[string]struct{})
	}
	if _, ok := s.seen[step.Text]; ok {
		return false
	}
	s.seen[step.Text] = struct{}{}
	s.Steps = append(s.Steps, step)
	return true
}

type Step struct {
	Keyword string // Given, When, Then, And, But as written
	Text    string // full line including the keyword
	Match   string // text after the keyword, used for matching
	Line    int
}

type ParseError struct {
	File    string
	Line    int
	Text    string
	Message string
}

func (e *ParseError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	return fmt.Sprintf("%s:%d: %s: %s", e.File, e.Line, e.Message, e.Text)
}
