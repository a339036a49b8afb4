package tui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/manav03panchal/cavetimer/internal/clock"
)

// PickerKind says which cave field a picker edits.
type PickerKind int

const (
	PickStart PickerKind = iota
	PickCooldown
)

// String returns a string representation of the kind.
func (k PickerKind) String() string {
	if k == PickCooldown {
		return "cooldown"
	}
	return "start time"
}

// PickerResult is the outcome of a key press on a picker.
type PickerResult int

const (
	PickerOpen PickerResult = iota
	PickerConfirmed
	PickerCancelled
)

const (
	fieldHour = iota
	fieldMinute
)

// Picker is a clock-face style hour/minute selector.
type Picker struct {
	Kind   PickerKind
	CaveID string
	Hour   int
	Minute int

	field int
	typed string
}

// NewPicker opens a picker for cave id starting at initial.
func NewPicker(kind PickerKind, id string, initial clock.Time) *Picker {
	return &Picker{
		Kind:   kind,
		CaveID: id,
		Hour:   wrap(initial.Hour, 24),
		Minute: wrap(initial.Minute, 60),
	}
}

// Value returns the selected time.
func (p *Picker) Value() clock.Time {
	return clock.New(p.Hour, p.Minute)
}

// HandleKey applies a key press.
func (p *Picker) HandleKey(msg tea.KeyMsg) PickerResult {
	switch msg.String() {
	case "enter":
		return PickerConfirmed
	case "esc", "q":
		return PickerCancelled
	case "up", "k":
		p.adjust(1)
	case "down", "j":
		p.adjust(-1)
	case "left", "right", "tab", "shift+tab", "h", "l", ":":
		p.switchField()
	case "backspace":
		p.typed = ""
	default:
		if len(msg.Runes) == 1 && msg.Runes[0] >= '0' && msg.Runes[0] <= '9' {
			p.typeDigit(msg.Runes[0])
		}
	}
	return PickerOpen
}

func (p *Picker) adjust(delta int) {
	p.typed = ""
	if p.field == fieldHour {
		p.Hour = wrap(p.Hour+delta, 24)
	} else {
		p.Minute = wrap(p.Minute+delta, 60)
	}
}

func (p *Picker) switchField() {
	p.typed = ""
	p.field = 1 - p.field
}

// typeDigit fills the current field two digits at a time and moves on to
// minutes once the hour is complete.
func (p *Picker) typeDigit(r rune) {
	p.typed += string(r)
	n, _ := strconv.Atoi(p.typed)

	if p.field == fieldHour {
		p.Hour = min(n, 23)
	} else {
		p.Minute = min(n, 59)
	}

	if len(p.typed) == 2 {
		p.typed = ""
		if p.field == fieldHour {
			p.field = fieldMinute
		}
	}
}

// View renders the picker.
func (p *Picker) View() string {
	hour := fmt.Sprintf("%02d", p.Hour)
	minute := fmt.Sprintf("%02d", p.Minute)
	if p.field == fieldHour {
		hour = StylePickerActive.Render(hour)
		minute = StylePickerField.Render(minute)
	} else {
		hour = StylePickerField.Render(hour)
		minute = StylePickerActive.Render(minute)
	}

	title := StyleTitle.Render(fmt.Sprintf("Cave %s %s", p.CaveID, p.Kind))
	face := StyleClock.Render(hour + " : " + minute)
	hint := StyleSubtitle.Render("↑/↓ adjust  ←/→ field  enter ok  esc cancel")

	return StylePickerBox.Render(title + "\n\n" + face + "\n\n" + hint)
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
