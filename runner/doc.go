// Package runner executes parsed features against step definitions.
//
// The main components are:
//   - Engine: parses each feature source in turn, runs its scenarios through
//     steps.Match, and keeps the run's Result counters
//   - Observer: receives one Event per notification; reporters and the run
//     history store are both observers
//   - Skeleton: a suggested definition for a step nothing matched
//
// Execution is sequential: sources in the order given, scenarios and steps
// in declaration order. Once a step in a scenario fails, is pending, or is
// skipped, every later step in that scenario is skipped without matching.
package runner
