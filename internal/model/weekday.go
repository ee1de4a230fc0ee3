package model

import "time"

// Weekdays lists the seven weekday symbols in display order, Monday first.
var Weekdays = []string{"월", "화", "수", "목", "금", "토", "일"}

// WeekdayIndex returns the position of a weekday symbol in display order,
// or -1 for an unknown symbol.
func WeekdayIndex(day string) int {
	for i, d := range Weekdays {
		if d == day {
			return i
		}
	}
	return -1
}

// IsWeekday reports whether day is one of the seven weekday symbols.
func IsWeekday(day string) bool {
	return WeekdayIndex(day) >= 0
}

// WeekdayForDate maps a calendar date to its weekday symbol.
// Sunday maps to the last slot.
func WeekdayForDate(t time.Time) string {
	wd := int(t.Weekday())
	if wd == 0 {
		return Weekdays[6]
	}
	return Weekdays[wd-1]
}
