package errors

import "errors"

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	ErrInvalidTime:       "Use 24-hour HH:MM, for example '08:30' or '1:00'.",
	ErrInvalidAssignment: "Use ID=VALUE, for example '--start 2=08:30' or '--cooldown 1=01:00'.",
	ErrInvalidCaveCount:  "The cave count must be at least 1.",
	ErrInvalidInterval:   "Use a whole number of seconds such as '1s' or '5s'.",
	ErrUnknownCave:       "Cave identifiers run from 1 to the configured cave count.",
	ErrNotTerminal:       "Run 'cavetimer watch --stream' when output is not a terminal.",
	ErrConfigUnreadable:  "Check the YAML syntax of the config file or pass --config with another path.",
}

// GetSuggestion returns a suggestion for an error, if available.
// It walks the error chain to find matching suggestions.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	// A UserError carries its own suggestion
	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	return ""
}

// GetCategorySuggestion returns a generic suggestion based on error category.
func GetCategorySuggestion(err error) string {
	if IsUserError(err) {
		return "Check your input and try again. Use --help for usage information."
	}
	if IsSystemError(err) {
		return "This is a system error. Check file permissions and your terminal, then try again."
	}
	return ""
}
