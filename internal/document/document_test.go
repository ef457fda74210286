package document

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeFile(t, "doc.json", `{"aiif_version":"1.0","info":{},"endpoints":[]}`)

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if got := doc.Get("aiif_version").String(); got != "1.0" {
		t.Errorf("aiif_version: got %q, want %q", got, "1.0")
	}
	if !doc.Get("endpoints").IsArray() {
		t.Error("endpoints: expected array")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("Load() on missing file: expected error")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	var le *LoadError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LoadError, got %T", err)
	}
	if le.Path == "" {
		t.Error("LoadError.Path is empty")
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"truncated", `{"aiif_version": "1.0"`},
		{"not json", `not json at all`},
		{"empty", ``},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := writeFile(t, "bad.json", c.content)
			_, err := Load(path)
			if !errors.Is(err, ErrInvalidJSON) {
				t.Errorf("expected ErrInvalidJSON, got %v", err)
			}
			if errors.Is(err, ErrNotFound) {
				t.Error("invalid JSON must not report ErrNotFound")
			}
		})
	}
}
