package steps

import (
	"errors"
	"fmt"
)

// Status is the outcome of matching and running one step.
type Status int

const (
	NotMatched Status = iota
	Success
	Pending
	Failed
)

func (s Status) String() string {
	switch s {
	case NotMatched:
		return "not matched"
	case Success:
		return "success"
	case Pending:
		return "pending"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

type Outcome struct {
	Status     Status
	Definition *Definition // nil when NotMatched
	Failures   []string    // one entry per failed assertion or error
}

// Match offers text to every definition of every provider, in order, and runs
// the action of the first one whose pattern matches. Placeholder captures are
// bound on c before the action runs and stay bound afterwards.
func Match(text string, c *Context, providers []Provider) Outcome {
	for _, p := range providers {
		for _, def := range p.Definitions() {
			fields, ok := def.Matcher.Match(text)
			if !ok {
				continue
			}
			c.bind(fields)
			return execute(def, c)
		}
	}
	return Outcome{Status: NotMatched}
}

func execute(def *Definition, c *Context) Outcome {
	c.takeFailures()
	err := invoke(def.Action, c)
	failures := c.takeFailures()

	pending := errors.Is(err, ErrPending)
	if err != nil && !pending {
		failures = append(failures, err.Error())
	}

	switch {
	case len(failures) > 0:
		return Outcome{Status: Failed, Definition: def, Failures: failures}
	case pending:
		return Outcome{Status: Pending, Definition: def}
	default:
		return Outcome{Status: Success, Definition: def}
	}
}

func invoke(action Action, c *Context) (err error) {
	if action == nil {
		return ErrPending
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return action(c)
}
