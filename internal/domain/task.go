package domain

import (
	"time"
)

// DateLayout is the only accepted textual form of a due date.
const DateLayout = "2006-01-02 15:04:05"

// Task represents a task in the domain model.
// Position is the 1-based rank among stored tasks in creation order; it is
// recomputed on every read and is not a stable identifier.
type Task struct {
	Position int
	Name     string
	Date     string
	Done     bool
}

// NewTask creates a new, not yet done Task.
func NewTask(name, date string) Task {
	return Task{
		Name: name,
		Date: date,
		Done: false,
	}
}

// HasDate reports whether the task has a due date.
func (t Task) HasDate() bool {
	return t.Date != ""
}

// IsLate reports whether the due date has passed at now. Done-status is not
// considered here.
func (t Task) IsLate(now time.Time) bool {
	return IsLate(t.Date, now)
}

// String returns the task name for display purposes.
func (t Task) String() string {
	return t.Name
}

// ParseDate parses a due date in the given location.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(DateLayout, date, loc)
}

// IsLate reports whether now is at or after date. The date carries no zone
// and is read at now's current UTC offset, not the offset in force at the
// due date. An empty or unparseable date is never late.
func IsLate(date string, now time.Time) bool {
	if date == "" {
		return false
	}
	_, offset := now.Zone()
	due, err := ParseDate(date, time.FixedZone("", offset))
	if err != nil {
		return false
	}
	return !now.Before(due)
}
