package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/cavetimer/internal/caves"
	"github.com/manav03panchal/cavetimer/internal/clock"
	"github.com/manav03panchal/cavetimer/internal/logging"
	"github.com/manav03panchal/cavetimer/internal/output"
	"github.com/manav03panchal/cavetimer/internal/ticker"
)

// ToastDuration is how long a toast stays visible.
const ToastDuration = 3 * time.Second

// TickMsg carries a clock sample from the tick driver.
type TickMsg struct {
	Now clock.Time
}

// DashboardModel is the main bubbletea model for the dashboard.
type DashboardModel struct {
	board    caves.Board
	selected int
	picker   *Picker

	clock clock.Clock
	now   func() time.Time

	// UI state
	width      int
	height     int
	message    string
	messageExp time.Time
}

// DashboardConfig holds configuration for the dashboard.
type DashboardConfig struct {
	Board    caves.Board
	Clock    clock.Clock
	Interval time.Duration
}

// NewDashboardModel creates a new dashboard model.
func NewDashboardModel(config DashboardConfig) *DashboardModel {
	if config.Clock == nil {
		config.Clock = clock.System{}
	}
	return &DashboardModel{
		board: config.Board,
		clock: config.Clock,
		now:   time.Now,
	}
}

// Board returns the current snapshot.
func (m *DashboardModel) Board() caves.Board {
	return m.board
}

// Selected returns the index of the selected cave.
func (m *DashboardModel) Selected() int {
	return m.selected
}

// Picker returns the open picker, or nil.
func (m *DashboardModel) Picker() *Picker {
	return m.picker
}

// Message returns the visible toast, if any.
func (m *DashboardModel) Message() string {
	return m.message
}

// Init initializes the model. Ticks come from the driver started by Run.
func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.picker != nil {
			return m.handlePickerKey(msg)
		}
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		m.tick(msg.Now)
		return m, nil
	}

	return m, nil
}

func (m *DashboardModel) tick(now clock.Time) {
	prev := m.board
	m.board = m.board.Tick(now)

	for _, ev := range caves.ReadyEvents(prev, m.board) {
		logging.Info("cave ready", logging.KeyCave, ev.ID, logging.KeyTime, ev.At.String())
		m.setMessage(output.NewReadyOutput(ev).Message(), ToastDuration)
	}

	// Clear expired messages
	if !m.messageExp.IsZero() && m.now().After(m.messageExp) {
		m.message = ""
		m.messageExp = time.Time{}
	}
}

// handleKeyPress handles keyboard input.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "right", "tab", "l":
		m.selectCave(m.selected + 1)

	case "left", "shift+tab", "h":
		m.selectCave(m.selected - 1)

	case "s":
		if id, ok := m.selectedID(); ok {
			m.picker = NewPicker(PickStart, id, m.clock.Now())
		}

	case "c":
		if id, ok := m.selectedID(); ok {
			m.picker = NewPicker(PickCooldown, id, m.board.Caves[m.selected].Cooldown)
		}

	case "n":
		if id, ok := m.selectedID(); ok {
			m.setStart(id, m.clock.Now())
		}

	case "r":
		m.board = m.board.Reset()
		logging.Info("caves reset", logging.KeyCount, m.board.Len())
		m.setMessage("All caves reset", ToastDuration)

	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= m.board.Len() {
			m.selectCave(n - 1)
		}
	}

	return m, nil
}

func (m *DashboardModel) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	p := m.picker
	switch p.HandleKey(msg) {
	case PickerConfirmed:
		m.picker = nil
		if p.Kind == PickCooldown {
			m.setCooldown(p.CaveID, p.Value())
		} else {
			m.setStart(p.CaveID, p.Value())
		}
	case PickerCancelled:
		m.picker = nil
	}
	return m, nil
}

func (m *DashboardModel) selectCave(i int) {
	n := m.board.Len()
	if n == 0 {
		return
	}
	m.selected = wrap(i, n)
}

func (m *DashboardModel) selectedID() (string, bool) {
	if m.selected < 0 || m.selected >= m.board.Len() {
		return "", false
	}
	return m.board.Caves[m.selected].ID, true
}

func (m *DashboardModel) setStart(id string, start clock.Time) {
	m.board = m.board.SetStartTime(id, start)
	logging.Info("start time set", logging.KeyCave, id, logging.KeyTime, start.String())
	m.setMessage(fmt.Sprintf("Cave %s started at %s", id, start), ToastDuration)
}

func (m *DashboardModel) setCooldown(id string, cooldown clock.Time) {
	m.board = m.board.SetCooldown(id, cooldown)
	logging.Info("cooldown set", logging.KeyCave, id, logging.KeyTime, cooldown.String())
	m.setMessage(fmt.Sprintf("Cave %s cooldown %s", id, cooldown), ToastDuration)
}

// setMessage sets a temporary message.
func (m *DashboardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = m.now().Add(duration)
}

// View renders the dashboard.
func (m *DashboardModel) View() string {
	var sections []string

	sections = append(sections, m.renderHeader())

	if m.message != "" {
		sections = append(sections, StyleSuccess.Render(m.message))
	}

	sections = append(sections, RenderCards(m.board.Caves, m.selected, m.width))

	if m.picker != nil {
		sections = append(sections, m.picker.View())
	} else {
		sections = append(sections, HelpBar())
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the dashboard header.
func (m *DashboardModel) renderHeader() string {
	title := StyleTitle.Render("Caves")
	now := StyleClock.Render(m.board.Now.String())

	working := 0
	for _, c := range m.board.Caves {
		if c.IsWorking() {
			working++
		}
	}
	summary := StyleSubtitle.Render(fmt.Sprintf("%d/%d cooling down", working, m.board.Len()))

	return strings.Join([]string{title, now, summary}, "  ") + "\n"
}

// Run starts the dashboard TUI and a tick driver feeding it. It returns when
// the user quits or ctx is cancelled.
func Run(ctx context.Context, config DashboardConfig) (caves.Board, error) {
	m := NewDashboardModel(config)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	driver := ticker.New(config.Interval, m.clock, func(now clock.Time) {
		p.Send(TickMsg{Now: now})
	})
	if err := driver.Start(ctx); err != nil {
		return m.board, err
	}
	defer driver.Stop()

	logging.DebugContext(ctx, "dashboard started", logging.KeyCount, m.board.Len())

	final, err := p.Run()
	if fm, ok := final.(*DashboardModel); ok {
		return fm.board, err
	}
	return m.board, err
}
