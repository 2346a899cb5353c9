package ui

import (
	"strconv"
	"strings"

	"github.com/chriserin/story/runner"
)

// SkeletonCode renders a skeleton as a pending steps.Set registration.
func SkeletonCode(sk runner.Skeleton) []string {
	pattern := "`" + sk.Pattern + "`"
	if strings.Contains(sk.Pattern, "`") {
		pattern = strconv.Quote(sk.Pattern)
	}
	return []string{
		"s.Step(" + pattern + ", func(c *steps.Context) error {",
		"\treturn steps.ErrPending",
		"})",
	}
}
