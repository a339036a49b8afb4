// Package clock provides the minute-precision wall-clock arithmetic used to
// track cave cooldowns.
//
// A Time is used both as a point on the wall clock and as a duration. Values
// produced by Add and DeriveEndTimeFromCooldown are not normalized to a single
// day, so Hour may exceed 23. Windows that cross midnight are not supported.
package clock

import (
	"fmt"
	"time"
)

// CooldownMultiplier inflates a cooldown picked on the clock face into the
// real wait window.
const CooldownMultiplier = 6

const minutesPerHour = 60

// Time is an hour/minute pair without seconds precision.
type Time struct {
	Hour   int `json:"hh" yaml:"hh"`
	Minute int `json:"mm" yaml:"mm"`
}

// Zero is 00:00, the start time of a cave that was never started.
var Zero = Time{}

// New creates a Time from an hour and a minute.
func New(hour, minute int) Time {
	return Time{Hour: hour, Minute: minute}
}

// FromMinutes splits a total minute count into an hour/minute pair.
// Negative totals produce negative components with the same sign.
func FromMinutes(total int) Time {
	return Time{Hour: total / minutesPerHour, Minute: total % minutesPerHour}
}

// Minutes returns the total number of minutes represented by t.
func (t Time) Minutes() int {
	return t.Hour*minutesPerHour + t.Minute
}

// IsZero reports whether t is 00:00.
func (t Time) IsZero() bool {
	return t == Zero
}

// IsNegative reports whether t represents a negative amount of minutes.
func (t Time) IsNegative() bool {
	return t.Minutes() < 0
}

// String renders t as zero-padded HH:MM.
func (t Time) String() string {
	if t.IsNegative() {
		return "-" + FromMinutes(-t.Minutes()).String()
	}
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Format renders t as zero-padded HH:MM.
func Format(t Time) string {
	return t.String()
}

// Sample truncates a wall-clock reading to its local hour and minute.
func Sample(t time.Time) Time {
	t = t.Local()
	return Time{Hour: t.Hour(), Minute: t.Minute()}
}

// Now samples the current wall-clock time.
func Now() Time {
	return Sample(time.Now())
}

// Add returns the minute-normalized sum of a and b.
func Add(a, b Time) Time {
	return FromMinutes(a.Minutes() + b.Minutes())
}

// DeriveEndTimeFromCooldown converts a cooldown picked as a time of day into
// the real wait duration: the picked minutes multiplied by CooldownMultiplier.
func DeriveEndTimeFromCooldown(cooldown Time) Time {
	return FromMinutes(cooldown.Minutes() * CooldownMultiplier)
}

// ComputeRemaining returns end minus current. The result is negative when
// current is past end; callers treat that as finished.
func ComputeRemaining(current, end Time) Time {
	return FromMinutes(end.Minutes() - current.Minutes())
}

// Clock samples the current time.
type Clock interface {
	Now() Time
}

// System is the Clock backed by the local wall clock.
type System struct{}

// Now implements Clock.
func (System) Now() Time {
	return Now()
}

// Fixed is a Clock that always returns the same Time.
type Fixed Time

// Now implements Clock.
func (f Fixed) Now() Time {
	return Time(f)
}

// Func adapts a function to the Clock interface.
type Func func() Time

// Now implements Clock.
func (f Func) Now() Time {
	return f()
}
