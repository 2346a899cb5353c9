// Package steps holds everything a step library needs: the Context shared
// by all step actions of a run, step definitions and the Provider interface
// that groups them, the placeholder compiler that turns natural-language
// patterns into matchers, and Match, which finds and runs the definition for
// a step.
//
// A pattern marks its arguments with double quotes:
//
//	s := steps.NewSet("cart")
//	s.Step(`I have "count" apples`, func(c *steps.Context) error {
//		c.Set("apples", c.Field("count"))
//		return nil
//	})
//
// The step text must quote the value as well (`Given I have "3" apples`);
// the value without its quotes is bound on the Context under the name
// written in the pattern.
package steps
