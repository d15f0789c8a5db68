package recordkit

import (
	"errors"
	"fmt"
	"strings"
)

// Common validation errors that can be used across the application.
var (
	// ErrRecordInvalid is the sentinel matched by errors.Is when the strict
	// entry point rejects a record.
	ErrRecordInvalid = errors.New("record invalid")

	// ErrEmptyAttribute is returned when a rule is registered without an
	// attribute name.
	ErrEmptyAttribute = errors.New("rule attribute name must not be empty")

	// ErrNilCheck is returned when a rule is registered without a check
	// function.
	ErrNilCheck = errors.New("rule check function must not be nil")
)

// FieldError represents a single validation failure with translation support.
type FieldError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Errors collects validation failures per attribute, preserving the order in
// which rules reported them. Duplicate messages are allowed.
type Errors []FieldError

func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, fe := range e {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *Errors) Add(fe FieldError) {
	*e = append(*e, fe)
}

func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// Get returns the messages recorded for a field, in insertion order.
func (e Errors) Get(field string) []string {
	var messages []string
	for _, fe := range e {
		if fe.Field == field {
			messages = append(messages, fe.Message)
		}
	}
	return messages
}

// GetErrors returns the full FieldError values recorded for a field.
func (e Errors) GetErrors(field string) []FieldError {
	var out []FieldError
	for _, fe := range e {
		if fe.Field == field {
			out = append(out, fe)
		}
	}
	return out
}

// Fields returns the attributes that have at least one failure, in the order
// they first failed.
func (e Errors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, fe := range e {
		if !seen[fe.Field] {
			fields = append(fields, fe.Field)
			seen[fe.Field] = true
		}
	}
	return fields
}

func (e Errors) IsEmpty() bool {
	return len(e) == 0
}

// RecordInvalidError is the fault returned by the strict validation entry
// point. It carries the same Errors the non-strict path reports so the
// catcher can inspect per-attribute failures.
type RecordInvalidError struct {
	Errors Errors
}

func (e *RecordInvalidError) Error() string {
	return "record invalid: " + e.Errors.Error()
}

func (e *RecordInvalidError) Is(target error) bool {
	return target == ErrRecordInvalid
}

func (e *RecordInvalidError) Unwrap() error {
	return e.Errors
}

// AsRecordInvalid extracts a *RecordInvalidError from an error chain.
func AsRecordInvalid(err error) *RecordInvalidError {
	if err == nil {
		return nil
	}

	var rie *RecordInvalidError
	if errors.As(err, &rie) {
		return rie
	}
	return nil
}
