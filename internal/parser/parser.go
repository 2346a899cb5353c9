package parser

import (
	"regexp"
	"strings"
)

var (
	featurePattern  = regexp.MustCompile(`(?i)^Feature:`)
	scenarioPattern = regexp.MustCompile(`(?i)^Scenario:`)
	stepPattern     = regexp.MustCompile(`(?i)^(given|when|then|and|but)\s*(.*)$`)
)

type state int

const (
	stateStart state = iota
	stateFeatureHeader
	stateScenario
)

type parseState struct {
	file     string
	state    state
	feature  *Feature
	scenario *Scenario
}

// Parse parses the contents of a .feature file. Blank lines are skipped; any
// other line the grammar cannot classify is reported as a *ParseError.
func Parse(filename string, content []byte) (*Feature, error) {
	text := strings.ReplaceAll(string(content), "\r\n", "\n")
	p := &parseState{file: filename}

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if err := p.line(i+1, line); err != nil {
			return nil, err
		}
	}

	if p.feature == nil {
		return nil, &ParseError{File: filename, Message: "no Feature: header"}
	}
	return p.feature, nil
}

func (p *parseState) line(n int, line string) error {
	switch {
	case featurePattern.MatchString(line):
		// A later Feature: line continues the same feature's header.
		if p.feature == nil {
			p.feature = &Feature{File: p.file}
		}
		p.feature.Description = append(p.feature.Description, line)
		p.scenario = nil
		p.state = stateFeatureHeader

	case p.state != stateStart && scenarioPattern.MatchString(line):
		p.scenario = &Scenario{Description: []string{line}, Line: n}
		p.feature.Scenarios = append(p.feature.Scenarios, p.scenario)
		p.state = stateScenario

	case p.state == stateFeatureHeader:
		p.feature.Description = append(p.feature.Description, "  "+line)

	case p.state == stateScenario && stepPattern.MatchString(line):
		m := stepPattern.FindStringSubmatch(line)
		p.scenario.addStep(Step{Keyword: m[1], Text: line, Match: m[2], Line: n})

	default:
		return p.errorf(n, line, "can't understand")
	}
	return nil
}

func (p *parseState) errorf(n int, line, msg string) error {
	return &ParseError{File: p.file, Line: n, Text: line, Message: msg}
}
