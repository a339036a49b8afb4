package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/cavetimer/internal/model"
	"github.com/manav03panchal/cavetimer/internal/output"
)

// CardWidth is the inner width of a cave card.
const CardWidth = 20

// CaveCard displays one cave.
type CaveCard struct {
	Cave     output.CaveOutput
	Selected bool
}

// NewCaveCard creates a card for a cave.
func NewCaveCard(c model.Cave, selected bool) *CaveCard {
	return &CaveCard{Cave: output.NewCaveOutput(c), Selected: selected}
}

// View renders the card.
func (cc *CaveCard) View() string {
	c := cc.Cave
	var content strings.Builder

	title := "Cave " + c.ID
	if c.Status == model.StatusWorking.String() {
		content.WriteString(StyleCaveWorking.Render(title))
	} else {
		content.WriteString(StyleCaveEmpty.Render(title))
	}
	content.WriteString("\n\n")

	content.WriteString(cc.field(c.StartLabel()))
	content.WriteString("\n")
	content.WriteString(StyleValue.Render(c.CooldownLabel()))
	content.WriteString("\n")
	content.WriteString(cc.field(c.EndLabel()))
	content.WriteString("\n")
	content.WriteString(cc.field(c.RemainingLabel()))
	content.WriteString("\n\n")

	content.WriteString(ProgressBar(c.Progress, CardWidth-5))
	content.WriteString(" ")
	content.WriteString(StyleSubtitle.Render(c.PercentLabel()))

	box := StyleCard
	if cc.Selected {
		box = StyleSelectedCard
	}
	return box.Width(CardWidth).Render(content.String())
}

func (cc *CaveCard) field(label string) string {
	if !cc.Cave.Started {
		return StylePlaceholder.Render(label)
	}
	return StyleValue.Render(label)
}

// RenderCards lays out the cave cards, wrapping rows to fit width.
func RenderCards(caves []model.Cave, selected, width int) string {
	perRow := len(caves)
	if width > 0 {
		perRow = max(1, width/(CardWidth+5))
	}

	var rows []string
	var row []string
	for i, c := range caves {
		row = append(row, NewCaveCard(c, i == selected).View())
		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// HelpBar renders the help bar at the bottom.
func HelpBar() string {
	keys := []struct {
		key  string
		desc string
	}{
		{"←/→", "select"},
		{"s", "start"},
		{"n", "start now"},
		{"c", "cooldown"},
		{"r", "reset"},
		{"q", "quit"},
	}

	var parts []string
	for _, k := range keys {
		part := StyleHelpKey.Render(k.key) + " " + StyleHelpDesc.Render(k.desc)
		parts = append(parts, part)
	}

	return StyleHelp.Render(strings.Join(parts, "  •  "))
}
