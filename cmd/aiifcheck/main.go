package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "aiifcheck",
		Short:         "Conformance validation for AIIF API contract documents",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newValidateCmd())

	if err := root.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		// Anything else is an argument error.
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeBadInput)
	}
}
