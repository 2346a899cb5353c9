package steps

import (
	"fmt"
	"maps"
	"strings"

	"github.com/stretchr/testify/assert"
)

// Context is passed to every step action of a run. It carries the fields
// captured from placeholders, arbitrary values set by earlier steps, and the
// assertion failures recorded by the step currently executing.
//
// Context implements testify's assert.TestingT, so assertions can be made
// directly against it:
//
//	assert.Equal(c, "3", c.Field("count"))
//
// A failed assertion marks the step as failed but does not stop the action.
type Context struct {
	fields   map[string]string
	values   map[string]any
	failures []string
}

// NewContext returns a Context preloaded with values.
func NewContext(values map[string]any) *Context {
	c := &Context{
		fields: make(map[string]string),
		values: make(map[string]any, len(values)),
	}
	maps.Copy(c.values, values)
	return c
}

// Field returns the value bound to a placeholder name, or "" if none.
func (c *Context) Field(name string) string {
	return c.fields[name]
}

func (c *Context) LookupField(name string) (string, bool) {
	v, ok := c.fields[name]
	return v, ok
}

// Fields returns a copy of every placeholder binding made so far.
func (c *Context) Fields() map[string]string {
	return maps.Clone(c.fields)
}

func (c *Context) Get(key string) any {
	return c.values[key]
}

func (c *Context) Set(key string, value any) {
	if c.values == nil {
		c.values = make(map[string]any)
	}
	c.values[key] = value
}

// Errorf records a failed assertion against the running step.
func (c *Context) Errorf(format string, args ...any) {
	c.failures = append(c.failures, strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// Helper satisfies testify's tHelper so assertion call sites are reported
// the same way they are under go test.
func (c *Context) Helper() {}

// Assert returns testify assertions bound to c.
func (c *Context) Assert() *assert.Assertions {
	return assert.New(c)
}

// Failed reports whether the running step has recorded a failure.
func (c *Context) Failed() bool {
	return len(c.failures) > 0
}

func (c *Context) bind(fields map[string]string) {
	if c.fields == nil {
		c.fields = make(map[string]string, len(fields))
	}
	maps.Copy(c.fields, fields)
}

func (c *Context) takeFailures() []string {
	f := c.failures
	c.failures = nil
	return f
}
