package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// FieldViolation is a single validation failure on one field
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violation found before a write was attempted.
// Handlers render the full list so the caller can fix everything at once.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) == 0 {
		return "invalid input"
	}
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return strings.Join(msgs, "; ")
}

// First returns the first violation message, for single-message responses
func (e *ValidationError) First() string {
	if len(e.Violations) == 0 {
		return "invalid input"
	}
	return e.Violations[0].Message
}

// FieldMap groups violation messages per field
func (e *ValidationError) FieldMap() map[string][]string {
	m := make(map[string][]string, len(e.Violations))
	for _, v := range e.Violations {
		m[v.Field] = append(m[v.Field], v.Message)
	}
	return m
}

// NewValidationError builds a ValidationError from field/message pairs
func NewValidationError(violations ...FieldViolation) *ValidationError {
	return &ValidationError{Violations: violations}
}

// ConflictError signals a mutation blocked by dependent rows, e.g. deleting
// a client that still owns cargas. Rendered as 400 with the message.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// NewConflictError creates a conflict error
func NewConflictError(format string, args ...interface{}) *ConflictError {
	return &ConflictError{Message: fmt.Sprintf(format, args...)}
}
