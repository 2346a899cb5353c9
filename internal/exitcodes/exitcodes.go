// Package exitcodes defines the exit codes of the story binary.
//
//   - Success (0): every step passed or is pending
//   - TestFailure (1): a step failed or has no definition
//   - RuntimeErr (2): the run could not proceed, for example a feature file
//     failed to parse or the configuration is invalid
package exitcodes

const (
	Success     = 0
	TestFailure = 1
	RuntimeErr  = 2
)
