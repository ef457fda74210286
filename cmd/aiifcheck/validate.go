package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aiifspec/aiifcheck/internal/checklist"
	"github.com/aiifspec/aiifcheck/internal/document"
	"github.com/aiifspec/aiifcheck/internal/engine"
	"github.com/aiifspec/aiifcheck/internal/render"
	"github.com/aiifspec/aiifcheck/internal/verdict"
)

// Exit codes are part of the invocation contract and must stay stable.
const (
	exitCodeFailed   = 1 // MUST failure, or SHOULD failure under --strict-should
	exitCodeBadInput = 2 // missing file, invalid JSON, bad arguments
)

// defaultChecklist is the conventional sibling file name consulted when
// --checklist is not given.
const defaultChecklist = "AIIF-Conformance-Checklist.json"

// exitError carries a process exit code through cobra's RunE error path.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// validateFlags holds all inputs to a validate run.
type validateFlags struct {
	aiifFile      string
	checklistFile string
	strictShould  bool
}

func newValidateCmd() *cobra.Command {
	var f validateFlags
	cmd := &cobra.Command{
		Use:           "validate <aiif-file>",
		Short:         "Validate an AIIF document against the conformance checklist",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f.aiifFile = args[0]
			return runValidate(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.checklistFile, "checklist", defaultChecklist,
		"path to the AIIF conformance checklist JSON")
	cmd.Flags().BoolVar(&f.strictShould, "strict-should", false,
		"treat SHOULD failures as non-compliance (non-zero exit)")
	return cmd
}

// runValidate loads both documents, runs the full check set, prints the
// report, and maps the summary to an exit code. Load failures terminate
// before any check runs.
func runValidate(cmd *cobra.Command, f validateFlags) error {
	doc, err := document.Load(f.aiifFile)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return &exitError{code: exitCodeBadInput}
	}
	checklistDoc, err := document.Load(f.checklistFile)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return &exitError{code: exitCodeBadInput}
	}

	idx := checklist.Build(checklistDoc)
	results := engine.Run(doc, idx)
	summary := engine.Summarize(results)

	fmt.Fprint(cmd.OutOrStdout(), render.Report(results, summary))

	if code := verdict.ExitCode(summary.MustFailures, summary.ShouldFailures, f.strictShould); code != 0 {
		return &exitError{code: code}
	}
	return nil
}
