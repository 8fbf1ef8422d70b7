// Command plannerctl is the admin CLI for the event planner: it applies
// database migrations and prints a user's dashboard from the command line.
package main

import (
	"os"
	_ "time/tzdata"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
