package steps

import "errors"

// ErrPending is returned by an action whose step is defined but not yet
// implemented.
var ErrPending = errors.New("pending")

// Action executes a matched step. Returning nil passes the step unless an
// assertion failed on the Context; returning ErrPending marks it pending; any
// other error fails it. A nil Action is treated as pending.
type Action func(c *Context) error

type Definition struct {
	Pattern string
	Matcher *Matcher
	Action  Action
}

// Define compiles pattern and binds it to action.
func Define(pattern string, action Action) *Definition {
	return &Definition{
		Pattern: pattern,
		Matcher: Compile(pattern),
		Action:  action,
	}
}

// Provider is a source of step definitions. Definitions are offered steps in
// the order they are returned.
type Provider interface {
	Definitions() []*Definition
}

// Set is an ordered Provider built up with Step.
type Set struct {
	name string
	defs []*Definition
}

func NewSet(name string) *Set {
	return &Set{name: name}
}

func (s *Set) Name() string { return s.name }

// Step registers a definition and returns s for chaining.
func (s *Set) Step(pattern string, action Action) *Set {
	s.defs = append(s.defs, Define(pattern, action))
	return s
}

func (s *Set) Definitions() []*Definition {
	return s.defs
}
