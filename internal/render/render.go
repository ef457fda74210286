// Package render produces the text conformance report from an ordered
// CheckResult sequence and its summary. Purely a projection; all counting
// happens in the engine's summary fold.
package render

import (
	"fmt"
	"strings"

	"github.com/aiifspec/aiifcheck/internal/schema"
	"github.com/aiifspec/aiifcheck/internal/verdict"
)

const ruleWidth = 72

// Report renders the full line-oriented report: one status line and one
// message line per check, then the summary block and verdict line. Identical
// inputs produce byte-identical output.
func Report(results []schema.CheckResult, summary schema.Summary) string {
	var sb strings.Builder

	sb.WriteString("AIIF Conformance Report\n")
	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n")

	for _, r := range results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(&sb, "[%s] %s (%s)\n", status, r.ID, r.Level)
		fmt.Fprintf(&sb, "       %s\n", r.Message)
	}

	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	fmt.Fprintf(&sb, "Total checks: %d\n", summary.Total)
	fmt.Fprintf(&sb, "MUST failures: %d\n", summary.MustFailures)
	fmt.Fprintf(&sb, "SHOULD failures: %d\n", summary.ShouldFailures)

	if verdict.Compliance(summary.MustFailures) == schema.VerdictCompliant {
		sb.WriteString("Result: COMPLIANT (all MUST checks passed)\n")
	} else {
		sb.WriteString("Result: NOT COMPLIANT (one or more MUST checks failed)\n")
	}

	return sb.String()
}
