package output

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/cavetimer/internal/caves"
	"github.com/manav03panchal/cavetimer/internal/model"
)

// Placeholders shown for a cave that was never started.
const (
	PlaceholderStart     = "start"
	PlaceholderEnd       = "end"
	PlaceholderRemaining = "rest"
)

// CaveOutput is the per-cave view consumed by every presentation.
type CaveOutput struct {
	ID        string  `json:"id"`
	Status    string  `json:"status"`
	Started   bool    `json:"started"`
	Start     string  `json:"start_time"`
	Cooldown  string  `json:"cooldown"`
	End       string  `json:"end_time"`
	Remaining string  `json:"remaining_time"`
	Progress  float64 `json:"progress"`
	Percent   int     `json:"percent"`
}

// NewCaveOutput formats a cave.
func NewCaveOutput(c model.Cave) CaveOutput {
	return CaveOutput{
		ID:        c.ID,
		Status:    c.Status.String(),
		Started:   c.IsStarted(),
		Start:     c.StartTime.String(),
		Cooldown:  c.Cooldown.String(),
		End:       c.EndTime.String(),
		Remaining: c.Remaining.String(),
		Progress:  c.Progress,
		Percent:   c.Percent(),
	}
}

// StartLabel is the start button text: the start time, or a placeholder.
func (c CaveOutput) StartLabel() string {
	if !c.Started {
		return PlaceholderStart
	}
	return "st: " + c.Start
}

// CooldownLabel is the cooldown button text.
func (c CaveOutput) CooldownLabel() string {
	return "cd: " + c.Cooldown
}

// EndLabel is the end time text, or a placeholder.
func (c CaveOutput) EndLabel() string {
	if !c.Started {
		return PlaceholderEnd + " /"
	}
	return "e: " + c.End
}

// RemainingLabel is the remaining time text, or a placeholder.
func (c CaveOutput) RemainingLabel() string {
	if !c.Started {
		return PlaceholderRemaining
	}
	return "r: " + c.Remaining
}

// PercentLabel renders the progress as a whole percentage.
func (c CaveOutput) PercentLabel() string {
	return fmt.Sprintf("%d%%", c.Percent)
}

// BoardOutput is the view of a whole board at one tick.
type BoardOutput struct {
	Time  string       `json:"time"`
	Caves []CaveOutput `json:"caves"`
}

// NewBoardOutput formats a board.
func NewBoardOutput(b caves.Board) BoardOutput {
	out := BoardOutput{
		Time:  b.Now.String(),
		Caves: make([]CaveOutput, len(b.Caves)),
	}
	for i, c := range b.Caves {
		out.Caves[i] = NewCaveOutput(c)
	}
	return out
}

// ReadyOutput announces a finished cooldown.
type ReadyOutput struct {
	Event string `json:"event"`
	ID    string `json:"id"`
	At    string `json:"at"`
}

// NewReadyOutput formats a ready event.
func NewReadyOutput(ev caves.ReadyEvent) ReadyOutput {
	return ReadyOutput{Event: "ready", ID: ev.ID, At: ev.At.String()}
}

// Message is the human-readable announcement of a ready event.
func (r ReadyOutput) Message() string {
	return fmt.Sprintf("Cave %s is ready", r.ID)
}

// ProgressBar renders a text progress bar of the given width.
func ProgressBar(progress float64, width int) string {
	if width <= 0 {
		return ""
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(width))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
