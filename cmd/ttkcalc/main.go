// Package main is the one-shot command line front end of the calculator.
// Each subcommand evaluates a single calculator command and prints the result.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
