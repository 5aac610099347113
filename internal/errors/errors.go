// Package errors provides centralized error types for the tally launcher.
// Keep it minimal - only add what's actually used.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for type checking with errors.Is()
var (
	ErrNotFound = errors.New("not found")
	ErrSpawn    = errors.New("spawn failed")
)

// Error codes
const (
	CodeMissingBinary = "MISSING_BINARY"
	CodeSpawnFailed   = "SPAWN_FAILED"
	CodeLocateFailed  = "LOCATE_FAILED"
)

// Error is a typed error with code, message and optional details.
// Kind is the sentinel the error matches with errors.Is; Err is the
// underlying cause, if any.
type Error struct {
	Code    string
	Message string
	Kind    error
	Err     error
	Details map[string]any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return e.Kind != nil && e.Kind == target
}

// WithDetail adds a detail to the error (chainable)
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// MissingBinary reports that no regular file exists at path. The message
// points the user at issueURL since the gap is a packaging problem.
func MissingBinary(path, issueURL string) *Error {
	e := &Error{
		Code:    CodeMissingBinary,
		Message: fmt.Sprintf("Couldn't find binary %s. Please create an issue: %s", path, issueURL),
		Kind:    ErrNotFound,
	}
	return e.WithDetail("path", path)
}

// SpawnFailed wraps the host error returned when path could not be started.
func SpawnFailed(path string, err error) *Error {
	if err == nil {
		return nil
	}
	e := &Error{
		Code:    CodeSpawnFailed,
		Message: fmt.Sprintf("failed to run %s", path),
		Kind:    ErrSpawn,
		Err:     err,
	}
	return e.WithDetail("path", path)
}

// LocateFailed wraps the error returned when the launcher cannot find
// its own executable.
func LocateFailed(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    CodeLocateFailed,
		Message: "failed to locate launcher executable",
		Kind:    ErrSpawn,
		Err:     err,
	}
}
