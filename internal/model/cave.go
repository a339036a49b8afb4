// Package model defines the domain models for cavetimer.
package model

import (
	"github.com/manav03panchal/cavetimer/internal/clock"
)

// ContainersPerCave is the number of container slots in every cave.
const ContainersPerCave = 6

// Container is a sub-resource slot inside a cave. Its fields are carried
// but not driven by the tick logic.
type Container struct {
	Status      Status  `json:"status"`
	LoaderLevel float64 `json:"loader_level"`
}

// Cave is one independently timed resource slot.
type Cave struct {
	ID        string     `json:"id"`
	Status    Status     `json:"status"`
	StartTime clock.Time `json:"start_time"`
	EndTime   clock.Time `json:"end_time"`
	Remaining clock.Time `json:"remaining_time"`
	Cooldown  clock.Time `json:"cooldown"`
	Progress  float64    `json:"progress"`

	Containers [ContainersPerCave]Container `json:"containers"`
}

// DefaultCooldown is the cooldown a fresh cave starts with.
var DefaultCooldown = clock.New(1, 0)

// NewCave creates a cave with default values and the given identifier.
func NewCave(id string) Cave {
	return NewCaveWithCooldown(id, DefaultCooldown)
}

// NewCaveWithCooldown creates a fresh cave using cooldown instead of the
// default. Remaining starts as the full derived window.
func NewCaveWithCooldown(id string, cooldown clock.Time) Cave {
	c := Cave{
		ID:        id,
		Status:    StatusEmpty,
		StartTime: clock.Zero,
		EndTime:   clock.Zero,
		Cooldown:  cooldown,
		Remaining: clock.DeriveEndTimeFromCooldown(cooldown),
	}
	for i := range c.Containers {
		c.Containers[i] = Container{Status: StatusEmpty}
	}
	return c
}

// IsStarted reports whether a start time was ever selected. A start time of
// 00:00 is treated as never set.
func (c Cave) IsStarted() bool {
	return !c.StartTime.IsZero()
}

// IsWorking returns true while the cave is inside its cooldown window.
func (c Cave) IsWorking() bool {
	return c.Status == StatusWorking
}

// Percent returns the progress as a whole percentage.
func (c Cave) Percent() int {
	return int(c.Progress*100 + 0.5)
}
