package recurrence

import (
	"fmt"
	"strings"
	"time"
)

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

var monthNames = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// ParseWeekday resolves a full English weekday name, case-insensitively.
func ParseWeekday(name string) (time.Weekday, error) {
	w, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday: %q", name)
	}
	return w, nil
}

// ParseMonth resolves a full English month name, case-insensitively.
func ParseMonth(name string) (time.Month, error) {
	m, ok := monthNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown month: %q", name)
	}
	return m, nil
}

// NextWeekday returns the next date strictly after ref that falls on w.
// When ref itself falls on w the result is one week out: the function means
// "the next time this slot recurs", so it never answers with ref's own day.
func NextWeekday(ref time.Time, w time.Weekday) time.Time {
	ahead := (int(w) - int(ref.Weekday()) + 7) % 7
	if ahead == 0 {
		ahead = 7
	}
	return ref.AddDate(0, 0, ahead)
}
