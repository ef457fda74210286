// Package document loads AIIF and checklist JSON files into untyped document
// trees. Checks test key presence rather than Go-typed values, so documents
// are represented as gjson trees instead of structs.
package document

import (
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/gjson"
)

// ErrNotFound indicates the input file does not exist.
var ErrNotFound = errors.New("file not found")

// ErrInvalidJSON indicates the input file exists but is not valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON")

// LoadError is a fatal input failure. It wraps ErrNotFound or ErrInvalidJSON
// so callers can distinguish the two without string matching.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("document: %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads and parses the JSON file at path. Any failure is a *LoadError;
// no partial result is ever returned.
func Load(path string) (gjson.Result, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return gjson.Result{}, &LoadError{Path: path, Err: ErrNotFound}
		}
		return gjson.Result{}, &LoadError{Path: path, Err: err}
	}
	if !gjson.ValidBytes(b) {
		return gjson.Result{}, &LoadError{Path: path, Err: ErrInvalidJSON}
	}
	return gjson.ParseBytes(b), nil
}
