// Package checklist indexes the AIIF conformance checklist by check id.
// The checklist assigns severity levels; it never drives which checks run.
package checklist

import (
	"github.com/tidwall/gjson"

	"github.com/aiifspec/aiifcheck/internal/schema"
)

// Index maps check ids to their declared severity levels. It is built once
// per run and immutable thereafter.
type Index struct {
	levels map[string]schema.Level
}

// Build walks the checklist's "checks" array and indexes each descriptor by
// its string id. Entries without a string id are skipped. A missing or
// malformed checks array yields an empty index, not an error: every lookup
// then falls back to INFO.
func Build(doc gjson.Result) Index {
	levels := make(map[string]schema.Level)
	doc.Get("checks").ForEach(func(_, item gjson.Result) bool {
		id := item.Get("id")
		if id.Type != gjson.String {
			return true
		}
		level := schema.LevelInfo
		switch schema.Level(item.Get("level").String()) {
		case schema.LevelMust:
			level = schema.LevelMust
		case schema.LevelShould:
			level = schema.LevelShould
		}
		levels[id.String()] = level
		return true
	})
	return Index{levels: levels}
}

// Level returns the declared level for id, or INFO when the checklist does
// not define it.
func (ix Index) Level(id string) schema.Level {
	if lvl, ok := ix.levels[id]; ok {
		return lvl
	}
	return schema.LevelInfo
}

// Defined reports whether the checklist carries a descriptor for id.
// Descriptor-gated checks consult this before emitting a result.
func (ix Index) Defined(id string) bool {
	_, ok := ix.levels[id]
	return ok
}

// Len returns the number of indexed descriptors.
func (ix Index) Len() int {
	return len(ix.levels)
}
