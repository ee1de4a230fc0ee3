// Package model defines the core domain types for routine and habit tracking.
package model

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// DefaultRatingScale is the upper bound of the satisfaction rating scale.
// Two UI generations used a 0-5 scale; the scale is configurable per store.
const DefaultRatingScale = 10

// habitMarker is the legacy "(습관)" prefix some suggestion sources attach
// to habit names.
var habitMarker = regexp.MustCompile(`\(\s*습관\s*\)-?`)

// Routine represents a single scheduled or ad-hoc activity entry.
type Routine struct {
	ID          string
	Day         string // weekday symbol, see Weekdays
	Start       string // HH:MM, empty for unscheduled habit entries
	End         string // HH:MM, empty for unscheduled habit entries
	Task        string
	Emoji       string // decorative, habit entries only
	Description string // decorative, habit entries only
	Rating      int    // satisfaction score, meaningful only when Done
	Done        bool
	IsHabit     bool
}

// NewRoutine creates a scheduled routine entry with a fresh ID.
// Done and Rating start at their zero values.
func NewRoutine(day, start, end, task string) Routine {
	return Routine{
		ID:    uuid.NewString(),
		Day:   day,
		Start: start,
		End:   end,
		Task:  task,
	}
}

// NewHabit creates an unscheduled micro-habit entry with a fresh ID.
// Habit entries carry no start/end time and must remain valid everywhere
// a scheduled routine is.
func NewHabit(day, task string) Routine {
	return Routine{
		ID:      uuid.NewString(),
		Day:     day,
		Task:    strings.TrimSpace(habitMarker.ReplaceAllString(task, "")),
		IsHabit: true,
	}
}

// DisplayTask returns the task label with the legacy habit marker removed.
func (r Routine) DisplayTask() string {
	if !r.IsHabit {
		return r.Task
	}
	return strings.TrimSpace(habitMarker.ReplaceAllString(r.Task, ""))
}

// Validate checks the routine against the given rating scale.
func (r Routine) Validate(scale int) error {
	if strings.TrimSpace(r.Task) == "" {
		return ErrEmptyTask
	}
	if !IsWeekday(r.Day) {
		return fmt.Errorf("%w: %q", ErrInvalidDay, r.Day)
	}
	if r.Rating < 0 || r.Rating > scale {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrInvalidRating, r.Rating, scale)
	}
	return nil
}
