package runtime

import (
	"errors"

	errs "github.com/manav03panchal/cavetimer/internal/errors"
	"github.com/manav03panchal/cavetimer/internal/parser"
)

// GetSuggestion returns a suggestion for an error, if available.
func GetSuggestion(err error) string {
	if s := errs.GetSuggestion(err); s != "" {
		return s
	}
	return errs.GetCategorySuggestion(err)
}

// FormatError formats an error with optional suggestion. Time parse errors
// also list example inputs.
func FormatError(err error) string {
	msg := err.Error()

	var tpe *parser.TimeParseError
	if errors.As(err, &tpe) {
		msg = tpe.FormatWithExamples()
	}

	if suggestion := GetSuggestion(err); suggestion != "" {
		msg += "\n" + suggestion
	}
	return msg
}
