package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const checklistPath = "../../testdata/AIIF-Conformance-Checklist.json"

// execValidate runs the validate command with args and returns its exit code
// plus captured stdout and stderr.
func execValidate(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newValidateCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return exitCode(err), out.String(), errOut.String()
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitCodeBadInput
}

func TestValidate_Compliant(t *testing.T) {
	code, out, _ := execValidate(t,
		"../../testdata/compliant/aiif.json", "--checklist", checklistPath)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0\n%s", code, out)
	}
	for _, want := range []string{
		"AIIF Conformance Report",
		"[PASS] impl.top_level.required_fields (MUST)",
		"[PASS] impl.endpoint.method.allowed (MUST)",
		"Total checks: 12",
		"MUST failures: 0",
		"Result: COMPLIANT (all MUST checks passed)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestValidate_MustFailureExitsOne(t *testing.T) {
	code, out, _ := execValidate(t,
		"../../testdata/duplicate-names/aiif.json", "--checklist", checklistPath)
	if code != exitCodeFailed {
		t.Fatalf("exit code = %d, want %d\n%s", code, exitCodeFailed, out)
	}
	for _, want := range []string{
		"[FAIL] impl.endpoint_name.unique (MUST)",
		"duplicate endpoint names: [get_order]",
		"Result: NOT COMPLIANT (one or more MUST checks failed)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestValidate_ShouldFailureAdvisoryByDefault(t *testing.T) {
	code, out, _ := execValidate(t,
		"../../testdata/missing-auth-required/aiif.json", "--checklist", checklistPath)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0 (SHOULD failures are advisory)\n%s", code, out)
	}
	if !strings.Contains(out, "[FAIL] impl.endpoint.auth_required_supported (SHOULD)") {
		t.Errorf("output missing SHOULD failure line:\n%s", out)
	}
	if !strings.Contains(out, "Result: COMPLIANT (all MUST checks passed)") {
		t.Errorf("SHOULD failure must not change the compliance verdict:\n%s", out)
	}
}

func TestValidate_StrictShouldEscalates(t *testing.T) {
	code, out, _ := execValidate(t,
		"../../testdata/missing-auth-required/aiif.json",
		"--checklist", checklistPath, "--strict-should")
	if code != exitCodeFailed {
		t.Fatalf("exit code = %d, want %d under --strict-should\n%s", code, exitCodeFailed, out)
	}
}

func TestValidate_MissingFileExitsTwo(t *testing.T) {
	code, out, errOut := execValidate(t,
		"../../testdata/no-such-file.json", "--checklist", checklistPath)
	if code != exitCodeBadInput {
		t.Fatalf("exit code = %d, want %d", code, exitCodeBadInput)
	}
	if out != "" {
		t.Errorf("no report must be produced on a fatal input error, got:\n%s", out)
	}
	if !strings.Contains(errOut, "file not found") {
		t.Errorf("stderr missing load error, got: %s", errOut)
	}
}

func TestValidate_InvalidJSONExitsTwo(t *testing.T) {
	code, out, errOut := execValidate(t,
		"../../testdata/invalid/aiif.json", "--checklist", checklistPath)
	if code != exitCodeBadInput {
		t.Fatalf("exit code = %d, want %d", code, exitCodeBadInput)
	}
	if out != "" {
		t.Errorf("no report must be produced on invalid JSON, got:\n%s", out)
	}
	if !strings.Contains(errOut, "invalid JSON") {
		t.Errorf("stderr missing parse error, got: %s", errOut)
	}
}

func TestValidate_MissingChecklistExitsTwo(t *testing.T) {
	code, _, errOut := execValidate(t,
		"../../testdata/compliant/aiif.json", "--checklist", "../../testdata/no-such-checklist.json")
	if code != exitCodeBadInput {
		t.Fatalf("exit code = %d, want %d", code, exitCodeBadInput)
	}
	if !strings.Contains(errOut, "no-such-checklist.json") {
		t.Errorf("stderr should name the missing checklist, got: %s", errOut)
	}
}

func TestValidate_ReportIsReproducible(t *testing.T) {
	_, first, _ := execValidate(t,
		"../../testdata/compliant/aiif.json", "--checklist", checklistPath)
	_, second, _ := execValidate(t,
		"../../testdata/compliant/aiif.json", "--checklist", checklistPath)
	if first != second {
		t.Error("two runs over unchanged input produced different reports")
	}
}

func TestValidate_RequiresDocumentArg(t *testing.T) {
	var out bytes.Buffer
	cmd := newValidateCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an argument error with no positional arg")
	}
}
