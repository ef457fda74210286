// Package checks defines the AIIF conformance check registry: an ordered list
// of side-effect-free predicates over a parsed AIIF document. Registry order
// is the reporting order, so it must stay stable across releases.
package checks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// unknownSentinel stands in for a missing comparable key during duplicate
// detection. Multiple entries missing the same key collapse to this value and
// are reported as duplicates; that surfacing is intentional.
const unknownSentinel = "<unknown>"

var allowedMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "PATCH": true, "DELETE": true,
}

var allowedLocations = map[string]bool{
	"path": true, "query": true, "body": true,
}

var allowedAuthTypes = map[string]bool{
	"none": true, "api_key": true, "bearer": true, "basic": true, "oauth2": true,
}

var constraintFields = []string{
	"minimum", "maximum", "min_length", "max_length", "pattern", "format",
}

// Check is one named conformance rule. Run inspects the document and returns
// whether it passed along with a human-readable message. A DescriptorGated
// check is executed only when the checklist defines a descriptor for its id.
type Check struct {
	ID              string
	DescriptorGated bool
	Run             func(doc gjson.Result) (passed bool, message string)
}

// Registry returns the full check set in its fixed declaration order.
func Registry() []Check {
	return []Check{
		{ID: "impl.top_level.required_fields", Run: checkTopLevelRequiredFields},
		{ID: "impl.endpoint_name.unique", Run: checkEndpointNameUnique},
		{ID: "impl.method_path.unique", Run: checkMethodPathUnique},
		{ID: "impl.params.unique_by_name_location", Run: checkParamsUnique},
		{ID: "impl.endpoint.method.allowed", DescriptorGated: true, Run: checkMethodAllowed},
		{ID: "impl.params.location.allowed", DescriptorGated: true, Run: checkParamLocationAllowed},
		{ID: "impl.auth_flow.structured_fields", Run: checkAuthFlowStructuredFields},
		{ID: "impl.auth_docs.required_for_protected", Run: checkAuthDocsRequirement},
		{ID: "impl.endpoint.auth_required_supported", Run: checkAuthRequiredPresence},
		{ID: "impl.endpoint.response_content_type_supported", Run: checkResponseContentTypePresence},
		{ID: "impl.params.constraints_published", Run: checkParamConstraintsPublished},
		{ID: "impl.agent_rules.consistent", Run: checkAgentRulesConsistent},
	}
}

// endpoints returns the document's endpoint objects. Anything that is not an
// object inside the endpoints array is skipped defensively.
func endpoints(doc gjson.Result) []gjson.Result {
	eps := doc.Get("endpoints")
	if !eps.IsArray() {
		return nil
	}
	var out []gjson.Result
	for _, ep := range eps.Array() {
		if ep.IsObject() {
			out = append(out, ep)
		}
	}
	return out
}

// params returns an endpoint's param objects, skipping non-objects and
// non-array params values.
func params(ep gjson.Result) []gjson.Result {
	ps := ep.Get("params")
	if !ps.IsArray() {
		return nil
	}
	var out []gjson.Result
	for _, p := range ps.Array() {
		if p.IsObject() {
			out = append(out, p)
		}
	}
	return out
}

// comparableKey returns the field's string value, or the unknown sentinel when
// the field is missing or not a string. Duplicate detection compares these
// values by exact string equality with no normalization.
func comparableKey(v gjson.Result) string {
	if v.Type == gjson.String {
		return v.String()
	}
	return unknownSentinel
}

func checkTopLevelRequiredFields(doc gjson.Result) (bool, string) {
	var bad []string
	for _, field := range []string{"aiif_version", "info", "endpoints"} {
		if !doc.Get(field).Exists() {
			bad = append(bad, field)
		}
	}
	version := doc.Get("aiif_version")
	versionOK := version.Type == gjson.String && strings.TrimSpace(version.String()) != ""
	if !versionOK {
		bad = append(bad, "aiif_version (must be non-empty string)")
	}
	if !doc.Get("info").IsObject() && doc.Get("info").Exists() {
		bad = append(bad, "info (must be an object)")
	}
	if !doc.Get("endpoints").IsArray() && doc.Get("endpoints").Exists() {
		bad = append(bad, "endpoints (must be an array)")
	}
	if len(bad) == 0 {
		return true, "top-level required fields present"
	}
	return false, fmt.Sprintf("missing/invalid top-level fields: [%s]", strings.Join(bad, ", "))
}

func checkEndpointNameUnique(doc gjson.Result) (bool, string) {
	seen := map[string]bool{}
	dups := map[string]bool{}
	for _, ep := range endpoints(doc) {
		name := comparableKey(ep.Get("name"))
		if seen[name] {
			dups[name] = true
		}
		seen[name] = true
	}
	if len(dups) == 0 {
		return true, "endpoint names are unique"
	}
	return false, fmt.Sprintf("duplicate endpoint names: [%s]", strings.Join(sortedKeys(dups), ", "))
}

func checkMethodPathUnique(doc gjson.Result) (bool, string) {
	seen := map[string]bool{}
	dups := map[string]bool{}
	for _, ep := range endpoints(doc) {
		key := fmt.Sprintf("(%s, %s)", comparableKey(ep.Get("method")), comparableKey(ep.Get("path")))
		if seen[key] {
			dups[key] = true
		}
		seen[key] = true
	}
	if len(dups) == 0 {
		return true, "(method,path) pairs are unique"
	}
	return false, fmt.Sprintf("duplicate (method,path) pairs: [%s]", strings.Join(sortedKeys(dups), ", "))
}

func checkParamsUnique(doc gjson.Result) (bool, string) {
	var violations []string
	for _, ep := range endpoints(doc) {
		epName := comparableKey(ep.Get("name"))
		seen := map[string]bool{}
		for _, p := range params(ep) {
			key := fmt.Sprintf("(%s, %s)", comparableKey(p.Get("name")), comparableKey(p.Get("location")))
			if seen[key] {
				violations = append(violations, epName+":"+key)
			}
			seen[key] = true
		}
	}
	if len(violations) == 0 {
		return true, "params are unique by (name,location)"
	}
	return false, fmt.Sprintf("duplicate params: [%s]", strings.Join(violations, ", "))
}

func checkMethodAllowed(doc gjson.Result) (bool, string) {
	var bad []string
	for _, ep := range endpoints(doc) {
		method := ep.Get("method")
		if method.Type != gjson.String || !allowedMethods[method.String()] {
			bad = append(bad, comparableKey(ep.Get("name"))+":"+method.String())
		}
	}
	if len(bad) == 0 {
		return true, "all methods are allowed"
	}
	return false, fmt.Sprintf("invalid methods: [%s]", strings.Join(bad, ", "))
}

func checkParamLocationAllowed(doc gjson.Result) (bool, string) {
	var bad []string
	for _, ep := range endpoints(doc) {
		epName := comparableKey(ep.Get("name"))
		for _, p := range params(ep) {
			location := p.Get("location")
			if location.Type != gjson.String || !allowedLocations[location.String()] {
				bad = append(bad, epName+":"+comparableKey(p.Get("name"))+":"+location.String())
			}
		}
	}
	if len(bad) == 0 {
		return true, "all parameter locations are valid"
	}
	return false, fmt.Sprintf("invalid parameter locations: [%s]", strings.Join(bad, ", "))
}

func checkAuthFlowStructuredFields(doc gjson.Result) (bool, string) {
	auth := doc.Get("auth")
	if !auth.Exists() || auth.Type == gjson.Null {
		return true, "auth not present; structured auth flow not triggered"
	}
	if !auth.IsObject() {
		return false, "auth exists but is not an object"
	}
	authType := auth.Get("type")
	if authType.Type != gjson.String || !allowedAuthTypes[authType.String()] {
		return false, fmt.Sprintf("auth.type invalid: %s", authType.String())
	}
	if authType.String() != "bearer" && authType.String() != "oauth2" {
		return true, fmt.Sprintf("auth.type is %s; structured auth flow not triggered", authType.String())
	}
	instructions := auth.Get("instructions")
	ok := instructions.IsArray() && len(instructions.Array()) > 0 &&
		auth.Get("acquire").IsObject() &&
		auth.Get("apply").IsObject()
	if ok {
		return true, "bearer/oauth2 auth includes instructions+acquire+apply"
	}
	return false, "bearer/oauth2 auth should include instructions, acquire, and apply"
}

// checkAuthDocsRequirement always passes: verifying that a live /ai-docs/auth
// endpoint exists is runtime behavior, out of scope for static document
// validation. The message still records whether the document declares
// protective auth.
func checkAuthDocsRequirement(doc gjson.Result) (bool, string) {
	authType := doc.Get("auth.type")
	if authType.Type == gjson.String && authType.String() != "none" {
		return true, "requires /ai-docs/auth for protected APIs (runtime endpoint verification out of scope for static document validation)"
	}
	return true, "auth.type is none or missing; /ai-docs/auth requirement not triggered"
}

func checkAuthRequiredPresence(doc gjson.Result) (bool, string) {
	var missing []string
	for _, ep := range endpoints(doc) {
		if !ep.Get("auth_required").Exists() {
			missing = append(missing, comparableKey(ep.Get("name")))
		}
	}
	if len(missing) == 0 {
		return true, "all endpoints include auth_required"
	}
	return false, fmt.Sprintf("endpoints missing auth_required: [%s]", strings.Join(missing, ", "))
}

func checkResponseContentTypePresence(doc gjson.Result) (bool, string) {
	var missing []string
	for _, ep := range endpoints(doc) {
		if !ep.Get("response_content_type").Exists() {
			missing = append(missing, comparableKey(ep.Get("name")))
		}
	}
	if len(missing) == 0 {
		return true, "all endpoints include response_content_type"
	}
	return false, fmt.Sprintf("endpoints missing response_content_type: [%s]", strings.Join(missing, ", "))
}

func checkParamConstraintsPublished(doc gjson.Result) (bool, string) {
	total := 0
	constrained := 0
	for _, ep := range endpoints(doc) {
		for _, p := range params(ep) {
			total++
			for _, field := range constraintFields {
				if p.Get(field).Exists() {
					constrained++
					break
				}
			}
		}
	}
	if total == 0 {
		return true, "no params defined; constraint publication not applicable"
	}
	return constrained > 0, fmt.Sprintf("%d/%d params publish machine-readable constraints", constrained, total)
}

func checkAgentRulesConsistent(doc gjson.Result) (bool, string) {
	rules := doc.Get("agent_rules")
	if !rules.Exists() || rules.Type == gjson.Null {
		return true, "agent_rules not present (optional)"
	}
	ok := rules.IsArray()
	if ok {
		for _, r := range rules.Array() {
			if r.Type != gjson.String || strings.TrimSpace(r.String()) == "" {
				ok = false
				break
			}
		}
	}
	if ok {
		return true, "agent_rules is a non-empty string list"
	}
	return false, "agent_rules should be an array of non-empty strings"
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
