// Package progress derives a cave's completion, status and remaining time
// from its start time, end time and the current time.
package progress

import (
	"github.com/manav03panchal/cavetimer/internal/clock"
	"github.com/manav03panchal/cavetimer/internal/model"
)

// Result holds the derived fields for one cave.
type Result struct {
	Fraction  float64
	Status    model.Status
	Remaining clock.Time
}

// Calculate computes the progress of the window [start, end] at current.
// A zero-length window yields zero progress. Anything outside (0, 1) resets
// to empty with no remaining time.
func Calculate(start, end, current clock.Time) Result {
	window := end.Minutes() - start.Minutes()
	elapsed := current.Minutes() - start.Minutes()

	var raw float64
	if window != 0 {
		raw = float64(elapsed) / float64(window)
	}

	if raw <= 0 || raw >= 1 {
		return Result{
			Fraction:  0,
			Status:    model.StatusEmpty,
			Remaining: clock.Zero,
		}
	}

	return Result{
		Fraction:  raw,
		Status:    model.StatusWorking,
		Remaining: clock.ComputeRemaining(current, end),
	}
}

// Apply returns c with its derived fields recomputed at current.
func Apply(c model.Cave, current clock.Time) model.Cave {
	r := Calculate(c.StartTime, c.EndTime, current)
	c.Progress = r.Fraction
	c.Status = r.Status
	c.Remaining = r.Remaining
	return c
}
