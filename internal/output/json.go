package output

import (
	"github.com/manav03panchal/cavetimer/internal/caves"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PrintBoard prints a board snapshot.
func (j *JSONFormatter) PrintBoard(b caves.Board) error {
	return j.JSON(NewBoardOutput(b))
}

// StreamBoard prints a board snapshot on one line.
func (j *JSONFormatter) StreamBoard(b caves.Board) error {
	return j.JSONLine(NewBoardOutput(b))
}

// StreamReady prints a ready event on one line.
func (j *JSONFormatter) StreamReady(ev caves.ReadyEvent) error {
	return j.JSONLine(NewReadyOutput(ev))
}

// PrintError prints an error response.
func (j *JSONFormatter) PrintError(status, message, suggestion string) error {
	return j.JSON(ErrorResponse{
		Status:     status,
		Error:      message,
		Suggestion: suggestion,
	})
}
