// Command story runs feature files with no step definitions registered, so
// every step is reported missing along with a suggested definition. Projects
// build their own binary that passes their providers to cmd.Execute.
package main

import "github.com/chriserin/story/cmd"

func main() {
	cmd.Execute()
}
