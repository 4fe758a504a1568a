package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Custom error types for the portfolio application

// ErrProjectNotFound is returned when a project ID doesn't exist in the database
var ErrProjectNotFound = errors.New("project not found")

// ErrInvalidProjectID is returned when a project identifier is not a positive integer
var ErrInvalidProjectID = errors.New("invalid project ID")

// ErrMissingAction is returned when a tracking request carries no action kind
var ErrMissingAction = errors.New("missing action kind")

// ErrClickRecordingFailed is returned when a click event could not be stored
type ErrClickRecordingFailed struct {
	Action string
	Err    error // Underlying storage error
}

func (e ErrClickRecordingFailed) Error() string {
	return fmt.Sprintf("failed to record click for action %s: %v", e.Action, e.Err)
}

func (e ErrClickRecordingFailed) Unwrap() error {
	return e.Err
}

// ErrLinkCheckFailed is returned when a project link health check fails
type ErrLinkCheckFailed struct {
	URL    string
	Reason string
}

func (e ErrLinkCheckFailed) Error() string {
	return fmt.Sprintf("failed to check URL %s: %s", e.URL, e.Reason)
}

// ValidationError carries per-field messages for a rejected form submission.
// Fields are keyed by form field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, name+": "+e.Fields[name])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether the given field has an error.
func (e *ValidationError) Has(field string) bool {
	_, ok := e.Fields[field]
	return ok
}
