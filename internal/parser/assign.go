package parser

import (
	"strings"
	"time"

	"github.com/manav03panchal/cavetimer/internal/clock"
	errs "github.com/manav03panchal/cavetimer/internal/errors"
)

// Assignment selects a time for one cave.
type Assignment struct {
	ID   string
	Time clock.Time
}

// SplitAssignment splits "ID=VALUE".
func SplitAssignment(input string) (id, value string, err error) {
	id, value, ok := strings.Cut(input, "=")
	id = strings.TrimSpace(id)
	value = strings.TrimSpace(value)
	if !ok || id == "" || value == "" {
		return "", "", errs.InvalidValue(errs.ErrInvalidAssignment, "assignment", input)
	}
	return id, value, nil
}

// ParseStartAssignments parses every "ID=START" pair relative to now.
func ParseStartAssignments(inputs []string, now time.Time) ([]Assignment, error) {
	return parseAssignments(inputs, func(v string) (clock.Time, error) {
		return ParseStartTime(v, now)
	})
}

// ParseCooldownAssignments parses every "ID=HH:MM" pair.
func ParseCooldownAssignments(inputs []string) ([]Assignment, error) {
	return parseAssignments(inputs, ParseCooldown)
}

func parseAssignments(inputs []string, parse func(string) (clock.Time, error)) ([]Assignment, error) {
	out := make([]Assignment, 0, len(inputs))
	for _, in := range inputs {
		id, value, err := SplitAssignment(in)
		if err != nil {
			return nil, err
		}
		t, err := parse(value)
		if err != nil {
			return nil, err
		}
		out = append(out, Assignment{ID: id, Time: t})
	}
	return out, nil
}
