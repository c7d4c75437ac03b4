// Package main provides the menubook CLI. Running it with no subcommand
// launches the interactive menu builder; subcommands offer the same
// operations one-shot for scripting.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
