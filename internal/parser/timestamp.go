// Package parser turns command-line input into cave selections.
package parser

import (
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"

	"github.com/manav03panchal/cavetimer/internal/clock"
)

// ParseStartTime reads a start time. Strict HH:MM is tried first, then
// natural language such as "now", "8am" or "20 minutes ago" relative to now.
func ParseStartTime(input string, now time.Time) (clock.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" || strings.EqualFold(s, "now") {
		return clock.Sample(now), nil
	}

	if t, err := clock.Parse(s); err == nil {
		return t, nil
	}

	// Use go-dateparser for natural language parsing
	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	result, err := dateparser.Parse(cfg, s)
	if err != nil || result.Time.IsZero() {
		return clock.Time{}, NewTimeParseError("start time", input, "not a time of day", StartExamples...)
	}

	return clock.Sample(result.Time), nil
}

// ParseCooldown reads a cooldown as a strict HH:MM clock-face value.
func ParseCooldown(input string) (clock.Time, error) {
	t, err := clock.Parse(input)
	if err != nil {
		return clock.Time{}, NewTimeParseError("cooldown", input, "expected HH:MM", CooldownExamples...)
	}
	return t, nil
}
