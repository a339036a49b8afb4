package clock

import (
	"strconv"
	"strings"

	errs "github.com/manav03panchal/cavetimer/internal/errors"
)

// Parse reads a strict 24-hour H:MM or HH:MM value.
func Parse(input string) (Time, error) {
	s := strings.TrimSpace(input)
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || hh == "" || len(hh) > 2 || len(mm) != 2 {
		return Time{}, errs.InvalidValue(errs.ErrInvalidTime, "time", input)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return Time{}, errs.InvalidValue(errs.ErrInvalidTime, "time", input)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return Time{}, errs.InvalidValue(errs.ErrInvalidTime, "time", input)
	}

	return Time{Hour: hour, Minute: minute}, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(input string) Time {
	t, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return t
}

// UnmarshalText lets Time be read from HH:MM strings in config files and flags.
func (t *Time) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
