// Command unitconv converts an amount between two units of the measure
// catalog.
//
//	unitconv 12 foot meter
//	unitconv -- -40 celsius fahrenheit --precision 1
//	unitconv list temperature
//
// Flags may also be set through UNITCONV_* environment variables or a YAML
// file passed with --config.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := newRootCommand(stdout, stderr)
	cmd.SetArgs(negativeAmountArgs(cmd.PersistentFlags(), args))

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}
