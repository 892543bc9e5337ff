package recurrence

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a clock time without a date, normalized to 24-hour form.
type TimeOfDay struct {
	Hour   int
	Minute int
}

var (
	timeOfDayRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*([AaPp][Mm])$`)
	meridiemRe  = regexp.MustCompile(`[AaPp][Mm]`)
)

// ParseTimeOfDay parses strings like "9 AM", "9:00 AM" or "12:30 pm".
// AM/PM is case-insensitive; minutes are optional. Anything else is
// rejected, which callers must treat as a recoverable data-quality issue.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	m := timeOfDayRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return TimeOfDay{}, fmt.Errorf("unparseable time of day: %q", s)
	}

	hour, err := strconv.Atoi(m[1])
	if err != nil || hour < 1 || hour > 12 {
		return TimeOfDay{}, fmt.Errorf("hour out of range in %q", s)
	}
	minute := 0
	if m[2] != "" {
		minute, err = strconv.Atoi(m[2])
		if err != nil || minute > 59 {
			return TimeOfDay{}, fmt.Errorf("minute out of range in %q", s)
		}
	}

	// 12 AM is midnight, 12 PM is noon.
	if hour == 12 {
		hour = 0
	}
	if strings.EqualFold(m[3], "PM") {
		hour += 12
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ParseTimeRange parses "9 AM - 5 PM" into a start and end time, or a lone
// "9 AM" into a start with no end. When only the second half carries a
// meridiem ("12 - 2 PM"), the first half borrows it, so "12 - 2 PM" reads
// as 12 PM - 2 PM.
func ParseTimeRange(s string) (TimeOfDay, *TimeOfDay, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) == 1 {
		start, err := ParseTimeOfDay(parts[0])
		return start, nil, err
	}

	second := strings.TrimSpace(parts[1])
	end, err := ParseTimeOfDay(second)
	if err != nil {
		return TimeOfDay{}, nil, err
	}

	first := strings.TrimSpace(parts[0])
	start, err := ParseTimeOfDay(first)
	if err != nil {
		mer := meridiemRe.FindString(second)
		if mer == "" {
			return TimeOfDay{}, nil, err
		}
		start, err = ParseTimeOfDay(first + " " + mer)
		if err != nil {
			return TimeOfDay{}, nil, err
		}
	}
	return start, &end, nil
}

// String renders the time in "3:04 PM" form.
func (t TimeOfDay) String() string {
	meridiem := "AM"
	h := t.Hour
	switch {
	case h == 0:
		h = 12
	case h == 12:
		meridiem = "PM"
	case h > 12:
		h -= 12
		meridiem = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", h, t.Minute, meridiem)
}

// At anchors the clock time onto the given date, in the date's location.
func (t TimeOfDay) At(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
}
