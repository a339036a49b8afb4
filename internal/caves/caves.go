// Package caves holds the ordered collection of tracked caves and the pure
// transitions applied to it. No function mutates its input slice.
package caves

import (
	"strconv"

	"github.com/manav03panchal/cavetimer/internal/clock"
	"github.com/manav03panchal/cavetimer/internal/model"
	"github.com/manav03panchal/cavetimer/internal/progress"
)

// DefaultCount is the number of caves on a fresh board.
const DefaultCount = 4

// Initialize creates count default caves identified "1".."count".
func Initialize(count int) []model.Cave {
	return InitializeWithCooldown(count, model.DefaultCooldown)
}

// InitializeWithCooldown is like Initialize with a custom starting cooldown.
func InitializeWithCooldown(count int, cooldown clock.Time) []model.Cave {
	if count < 0 {
		count = 0
	}
	out := make([]model.Cave, count)
	for i := range out {
		out[i] = model.NewCaveWithCooldown(strconv.Itoa(i+1), cooldown)
	}
	return out
}

// Reset discards every cave and returns a fresh default set.
func Reset(count int) []model.Cave {
	return Initialize(count)
}

// Tick recomputes the derived fields of every cave at now.
func Tick(caves []model.Cave, now clock.Time) []model.Cave {
	out := make([]model.Cave, len(caves))
	for i, c := range caves {
		out[i] = progress.Apply(c, now)
	}
	return out
}

// SetStartTime sets the start of the matching cave, derives its end time
// from its cooldown and recomputes progress at now. An unknown id returns
// caves unchanged.
func SetStartTime(caves []model.Cave, id string, start, now clock.Time) []model.Cave {
	return update(caves, id, func(c model.Cave) model.Cave {
		c.StartTime = start
		c.EndTime = clock.Add(start, clock.DeriveEndTimeFromCooldown(c.Cooldown))
		return progress.Apply(c, now)
	})
}

// SetCooldown sets the cooldown of the matching cave, derives its end time
// from its start time and recomputes progress at now. An unknown id returns
// caves unchanged.
func SetCooldown(caves []model.Cave, id string, cooldown, now clock.Time) []model.Cave {
	return update(caves, id, func(c model.Cave) model.Cave {
		c.Cooldown = cooldown
		c.EndTime = clock.Add(c.StartTime, clock.DeriveEndTimeFromCooldown(cooldown))
		return progress.Apply(c, now)
	})
}

// Find returns the cave with the given id.
func Find(caves []model.Cave, id string) (model.Cave, bool) {
	for _, c := range caves {
		if c.ID == id {
			return c, true
		}
	}
	return model.Cave{}, false
}

func update(caves []model.Cave, id string, fn func(model.Cave) model.Cave) []model.Cave {
	if _, ok := Find(caves, id); !ok {
		return caves
	}
	out := make([]model.Cave, len(caves))
	for i, c := range caves {
		if c.ID == id {
			c = fn(c)
		}
		out[i] = c
	}
	return out
}
