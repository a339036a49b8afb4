// Package tui provides the terminal dashboard for cavetimer.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI dashboard.
var (
	ColorPrimary   = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary = lipgloss.Color("#10B981") // Green
	ColorMuted     = lipgloss.Color("#6B7280") // Gray
	ColorWarning   = lipgloss.Color("#F59E0B") // Yellow
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorSuccess   = lipgloss.Color("#10B981") // Green
	ColorActive    = lipgloss.Color("#3B82F6") // Blue
	ColorBorder    = lipgloss.Color("#4B5563") // Dark gray
	ColorEmpty     = lipgloss.Color("#FF7F50") // Coral
)

// Base styles for the TUI.
var (
	// StyleTitle is used for section titles.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleSubtitle is used for secondary information.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleClock is used for the time of day in the header.
	StyleClock = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorActive)

	// StyleCaveEmpty is used for the title of a cave that is not cooling down.
	StyleCaveEmpty = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorEmpty)

	// StyleCaveWorking is used for the title of a cave that is cooling down.
	StyleCaveWorking = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSuccess)

	// StyleValue is used for times shown on a card.
	StyleValue = lipgloss.NewStyle().
			Foreground(ColorActive)

	// StylePlaceholder is used for times of a cave that was never started.
	StylePlaceholder = lipgloss.NewStyle().
				Italic(true).
				Foreground(ColorMuted)

	// StyleWarning is used for warning messages.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleError is used for error messages.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleSuccess is used for toasts.
	StyleSuccess = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSuccess)

	// StyleHelp is used for help text at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// StyleHelpKey is used for keyboard shortcut keys.
	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	// StyleHelpDesc is used for keyboard shortcut descriptions.
	StyleHelpDesc = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Box styles.
var (
	// StyleCard frames one cave.
	StyleCard = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1).
			MarginRight(1)

	// StyleSelectedCard frames the selected cave.
	StyleSelectedCard = StyleCard.
				BorderForeground(ColorPrimary)

	// StylePickerBox frames the time picker.
	StylePickerBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 3).
			MarginTop(1)

	// StylePickerField is an unselected picker digit pair.
	StylePickerField = lipgloss.NewStyle().
				Foreground(ColorMuted)

	// StylePickerActive is the picker digit pair being edited.
	StylePickerActive = lipgloss.NewStyle().
				Bold(true).
				Reverse(true).
				Foreground(ColorPrimary)
)

// ProgressBar creates a progress bar string for a fraction in [0,1].
func ProgressBar(fraction float64, width int) string {
	if fraction > 1 {
		fraction = 1
	}
	if fraction < 0 {
		fraction = 0
	}
	if width < 0 {
		width = 0
	}

	filled := int(float64(width) * fraction)
	empty := width - filled

	filledStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	emptyStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	return filledStyle.Render(strings.Repeat("█", filled)) + // Full block
		emptyStyle.Render(strings.Repeat("░", empty)) // Light shade
}
