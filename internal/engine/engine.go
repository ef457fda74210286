// Package engine drives the check registry over a loaded AIIF document and
// folds the result sequence into a summary. No LLM or network calls are made
// anywhere in the validation path; the engine is a pure single-pass batch
// transform.
package engine

import (
	"github.com/tidwall/gjson"

	"github.com/aiifspec/aiifcheck/internal/checklist"
	"github.com/aiifspec/aiifcheck/internal/checks"
	"github.com/aiifspec/aiifcheck/internal/schema"
)

// Run executes every registered check exactly once, in registry declaration
// order, resolving each check's severity via the checklist index. A failing
// check never stops the run: all checks always execute so the report is
// complete in one pass. Descriptor-gated checks run only when the checklist
// defines them.
func Run(doc gjson.Result, idx checklist.Index) []schema.CheckResult {
	registry := checks.Registry()
	results := make([]schema.CheckResult, 0, len(registry))
	for _, c := range registry {
		if c.DescriptorGated && !idx.Defined(c.ID) {
			continue
		}
		passed, message := c.Run(doc)
		results = append(results, schema.CheckResult{
			ID:      c.ID,
			Level:   idx.Level(c.ID),
			Passed:  passed,
			Message: message,
		})
	}
	return results
}

// Summarize folds a result sequence into aggregate counts. Only failures
// count toward the MUST and SHOULD tallies; INFO failures affect neither.
func Summarize(results []schema.CheckResult) schema.Summary {
	s := schema.Summary{Total: len(results)}
	for _, r := range results {
		if r.Passed {
			continue
		}
		switch r.Level {
		case schema.LevelMust:
			s.MustFailures++
		case schema.LevelShould:
			s.ShouldFailures++
		}
	}
	return s
}
