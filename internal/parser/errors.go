package parser

import (
	"fmt"
	"strings"

	errs "github.com/manav03panchal/cavetimer/internal/errors"
)

// TimeParseError represents a time parsing error with helpful suggestions.
type TimeParseError struct {
	Input    string
	Field    string
	Message  string
	Examples []string
}

func (e *TimeParseError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Input, e.Message)
}

// Unwrap lets callers match the error with errors.Is(err, errors.ErrInvalidTime).
func (e *TimeParseError) Unwrap() error {
	return errs.ErrInvalidTime
}

// NewTimeParseError creates a new time parse error with examples.
func NewTimeParseError(field, input, message string, examples ...string) *TimeParseError {
	return &TimeParseError{
		Input:    input,
		Field:    field,
		Message:  message,
		Examples: examples,
	}
}

// FormatWithExamples returns the error message with example suggestions.
func (e *TimeParseError) FormatWithExamples() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Examples) > 0 {
		sb.WriteString("\n\nValid examples:\n")
		for _, ex := range e.Examples {
			sb.WriteString("  - ")
			sb.WriteString(ex)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// Examples for common inputs.
var (
	StartExamples    = []string{"08:30", "now", "8am", "20 minutes ago"}
	CooldownExamples = []string{"01:00", "0:45", "02:30"}
)
