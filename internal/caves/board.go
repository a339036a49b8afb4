package caves

import (
	"github.com/manav03panchal/cavetimer/internal/clock"
	"github.com/manav03panchal/cavetimer/internal/model"
)

// Board is an immutable snapshot of the screen state: the last sampled time
// and every cave derived at that time.
type Board struct {
	Now   clock.Time
	Caves []model.Cave

	// Cooldown is given to every cave created by NewBoard and Reset.
	Cooldown clock.Time
}

// NewBoard creates a board of count default caves sampled at now.
func NewBoard(count int, now clock.Time) Board {
	return NewBoardWithCooldown(count, now, model.DefaultCooldown)
}

// NewBoardWithCooldown creates a board whose fresh caves use cooldown.
func NewBoardWithCooldown(count int, now clock.Time, cooldown clock.Time) Board {
	return Board{
		Now:      now,
		Caves:    InitializeWithCooldown(count, cooldown),
		Cooldown: cooldown,
	}
}

func (b Board) with(now clock.Time, caves []model.Cave) Board {
	b.Now = now
	b.Caves = caves
	return b
}

// Tick returns the board recomputed at now.
func (b Board) Tick(now clock.Time) Board {
	return b.with(now, Tick(b.Caves, now))
}

// SetStartTime applies SetStartTime against the board's last sample.
func (b Board) SetStartTime(id string, start clock.Time) Board {
	return b.with(b.Now, SetStartTime(b.Caves, id, start, b.Now))
}

// SetCooldown applies SetCooldown against the board's last sample.
func (b Board) SetCooldown(id string, cooldown clock.Time) Board {
	return b.with(b.Now, SetCooldown(b.Caves, id, cooldown, b.Now))
}

// Reset returns a fresh board of the same size, keeping the sampled time.
func (b Board) Reset() Board {
	return b.with(b.Now, InitializeWithCooldown(len(b.Caves), b.Cooldown))
}

// Len returns the number of caves.
func (b Board) Len() int {
	return len(b.Caves)
}

// Has reports whether a cave with id exists.
func (b Board) Has(id string) bool {
	_, ok := Find(b.Caves, id)
	return ok
}

// ReadyEvent reports a cave whose cooldown window just finished.
type ReadyEvent struct {
	ID string
	At clock.Time
}

// ReadyEvents compares two consecutive boards and lists caves that went
// from working to empty within the same window. Caves that were reset or
// reconfigured in between are not reported.
func ReadyEvents(prev, next Board) []ReadyEvent {
	var events []ReadyEvent
	for _, c := range next.Caves {
		before, ok := Find(prev.Caves, c.ID)
		if !ok {
			continue
		}
		if before.StartTime != c.StartTime || before.EndTime != c.EndTime {
			continue
		}
		if before.Status == model.StatusWorking && c.Status == model.StatusEmpty {
			events = append(events, ReadyEvent{ID: c.ID, At: next.Now})
		}
	}
	return events
}
