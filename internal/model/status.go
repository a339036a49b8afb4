package model

import "fmt"

// Status is the readiness state of a cave or container.
type Status string

const (
	// StatusEmpty means not started, or the last cycle finished.
	StatusEmpty Status = "empty"
	// StatusWorking means a cooldown window is in progress.
	StatusWorking Status = "working"
	// StatusLast is reserved for a final-cycle state. Nothing produces it yet.
	StatusLast Status = "last"
)

// ValidStatuses lists all known statuses.
var ValidStatuses = []Status{StatusEmpty, StatusWorking, StatusLast}

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// String returns the status name.
func (s Status) String() string {
	return string(s)
}

// ParseStatus converts a name into a Status.
func ParseStatus(name string) (Status, error) {
	s := Status(name)
	if !s.IsValid() {
		return "", fmt.Errorf("unknown status %q", name)
	}
	return s, nil
}
