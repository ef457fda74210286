// Package schema defines all canonical data types for the aiifcheck output format.
package schema

// Level represents the severity tier a checklist assigns to a check.
type Level string

const (
	LevelMust   Level = "MUST"
	LevelShould Level = "SHOULD"
	LevelInfo   Level = "INFO"
)

// Verdict represents the overall compliance verdict.
type Verdict string

const (
	VerdictCompliant    Verdict = "COMPLIANT"
	VerdictNotCompliant Verdict = "NOT COMPLIANT"
)

// CheckResult is the outcome of one conformance check against an AIIF document.
// The ordered sequence of CheckResults is the engine's sole output artifact;
// result order is part of the reporting contract.
type CheckResult struct {
	ID      string `json:"id"`
	Level   Level  `json:"level"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// Summary holds the aggregate counts folded from a CheckResult sequence.
type Summary struct {
	Total          int `json:"total"`
	MustFailures   int `json:"must_failures"`
	ShouldFailures int `json:"should_failures"`
}
