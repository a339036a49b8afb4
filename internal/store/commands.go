package store

import (
	"github.com/manav03panchal/cavetimer/internal/caves"
	"github.com/manav03panchal/cavetimer/internal/clock"
)

// Command is a state transition applied by the Store.
type Command interface {
	Apply(b caves.Board) caves.Board
	Name() string
}

// TickCmd recomputes every cave at Now.
type TickCmd struct {
	Now clock.Time
}

// Apply implements Command.
func (c TickCmd) Apply(b caves.Board) caves.Board { return b.Tick(c.Now) }

// Name implements Command.
func (TickCmd) Name() string { return "tick" }

// SetStartCmd selects a start time for one cave.
type SetStartCmd struct {
	ID    string
	Start clock.Time
}

// Apply implements Command.
func (c SetStartCmd) Apply(b caves.Board) caves.Board { return b.SetStartTime(c.ID, c.Start) }

// Name implements Command.
func (SetStartCmd) Name() string { return "set_start" }

// SetCooldownCmd selects a cooldown for one cave.
type SetCooldownCmd struct {
	ID       string
	Cooldown clock.Time
}

// Apply implements Command.
func (c SetCooldownCmd) Apply(b caves.Board) caves.Board { return b.SetCooldown(c.ID, c.Cooldown) }

// Name implements Command.
func (SetCooldownCmd) Name() string { return "set_cooldown" }

// ResetCmd replaces every cave with a fresh default.
type ResetCmd struct{}

// Apply implements Command.
func (ResetCmd) Apply(b caves.Board) caves.Board { return b.Reset() }

// Name implements Command.
func (ResetCmd) Name() string { return "reset" }
