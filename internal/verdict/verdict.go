// Package verdict provides deterministic local logic for compliance verdicts
// and the process exit-code policy.
package verdict

import (
	"github.com/aiifspec/aiifcheck/internal/schema"
)

// Compliance derives the verdict from the MUST-failure count alone.
// SHOULD failures never affect compliance; they only affect the exit code
// under strict mode.
func Compliance(mustFailures int) schema.Verdict {
	if mustFailures == 0 {
		return schema.VerdictCompliant
	}
	return schema.VerdictNotCompliant
}

// ExitCode maps aggregate failure counts and the strictness flag to the
// process exit code.
//
// Rules (in order of precedence):
//  1. Any MUST failure → 1
//  2. Strict mode and any SHOULD failure → 1
//  3. Otherwise → 0
//
// Fatal input errors (missing file, invalid JSON, bad arguments) exit 2
// before any check runs; that short-circuit lives in the CLI, not here.
func ExitCode(mustFailures, shouldFailures int, strictShould bool) int {
	if mustFailures > 0 {
		return 1
	}
	if strictShould && shouldFailures > 0 {
		return 1
	}
	return 0
}
