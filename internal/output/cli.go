package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/cavetimer/internal/caves"
	"github.com/manav03panchal/cavetimer/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary = lipgloss.Color("#7C3AED") // Purple
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorWarning = lipgloss.Color("#F59E0B") // Yellow
	colorError   = lipgloss.Color("#EF4444") // Red
	colorSuccess = lipgloss.Color("#10B981") // Green
	colorEmpty   = lipgloss.Color("#FF7F50") // Coral

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSuccess)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleWorking = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSuccess)

	styleEmpty = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorEmpty)
)

// BarWidth is the width of progress bars in CLI output.
const BarWidth = 20

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(style lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return style.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.render(styleError, "✗ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// StatusLabel formats a status with its color.
func (c *CLIFormatter) StatusLabel(status string) string {
	label := fmt.Sprintf("%-7s", status)
	if status == model.StatusWorking.String() {
		return c.render(styleWorking, label)
	}
	return c.render(styleEmpty, label)
}

// PrintBoard prints the current time and one block per cave.
func (c *CLIFormatter) PrintBoard(b caves.Board) {
	view := NewBoardOutput(b)

	c.Title(view.Time)
	c.Println()
	for _, cave := range view.Caves {
		c.Printf("%s  %s  %-9s %-9s\n",
			c.render(styleTitle, "Cave "+cave.ID),
			c.StatusLabel(cave.Status),
			cave.StartLabel(),
			cave.CooldownLabel())
		c.Printf("         %-9s %-9s %s %4s\n",
			cave.EndLabel(),
			cave.RemainingLabel(),
			c.bar(cave),
			cave.PercentLabel())
	}
}

func (c *CLIFormatter) bar(cave CaveOutput) string {
	bar := ProgressBar(cave.Progress, BarWidth)
	if cave.Status == model.StatusWorking.String() {
		return c.render(styleSuccess, bar)
	}
	return c.render(styleMuted, bar)
}

// StreamBoard prints a board on a single line, for piping.
func (c *CLIFormatter) StreamBoard(b caves.Board) {
	view := NewBoardOutput(b)
	parts := make([]string, 0, len(view.Caves)+1)
	parts = append(parts, view.Time)
	for _, cave := range view.Caves {
		if cave.Status == model.StatusWorking.String() {
			parts = append(parts, fmt.Sprintf("%s %s %s r %s",
				cave.ID, c.StatusLabel(cave.Status), cave.PercentLabel(), cave.Remaining))
		} else {
			parts = append(parts, fmt.Sprintf("%s %s", cave.ID, c.StatusLabel(cave.Status)))
		}
	}
	c.Println(strings.Join(parts, " | "))
}

// StreamReady announces a ready event.
func (c *CLIFormatter) StreamReady(ev caves.ReadyEvent) {
	r := NewReadyOutput(ev)
	c.Success(fmt.Sprintf("%s %s", r.At, r.Message()))
}
