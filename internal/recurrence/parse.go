package recurrence

import (
	"regexp"
	"strings"
	"time"
)

// SlotInfo is the schedule payload recovered from a slot string, in the
// forms the external scheduling API expects.
type SlotInfo struct {
	Date  string // "2006-01-02"; empty when no date was found
	Clock string // "3:04 PM"; empty when no time was found
}

var (
	isoDateRe  = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	longDateRe = regexp.MustCompile(`[A-Za-z]+\s+\d{1,2},?\s+\d{4}`)
	clockRe    = regexp.MustCompile(`(\d{1,2}:\d{2}|\d{1,2})\s*([AaPp][Mm])`)
	fromToRe   = regexp.MustCompile(`(?i)from\s+(\d{1,2})\s*([AP]M)`)
)

// ParseSlot pulls a schedule date and clock time out of an arbitrary slot
// string such as "May 10, 2025 9 AM - 5 PM" or "2025-05-10 at 9:00 AM".
// Either half may be absent; when both are, the second return is false.
// For a time range, the range's first time is taken.
func ParseSlot(text string) (SlotInfo, bool) {
	text = strings.TrimSpace(text)
	if !isSlotAnswer(text) {
		return SlotInfo{}, false
	}

	var info SlotInfo
	if m := isoDateRe.FindString(text); m != "" {
		info.Date = m
	} else if m := longDateRe.FindString(text); m != "" {
		if t, ok := parseLongDate(m, time.UTC); ok {
			info.Date = t.Format("2006-01-02")
		}
	}

	if m := clockRe.FindStringSubmatch(text); m != nil {
		clock := m[1]
		if !strings.Contains(clock, ":") {
			clock += ":00"
		}
		info.Clock = clock + " " + strings.ToUpper(m[2])
	} else if m := fromToRe.FindStringSubmatch(text); m != nil {
		// Phrasing like "from 12 PM to 2 PM".
		info.Clock = m[1] + ":00 " + strings.ToUpper(m[2])
	}

	if info.Date == "" && info.Clock == "" {
		return SlotInfo{}, false
	}
	return info, true
}

// parseLongDate parses "May 10, 2025" (comma optional) in the given location.
func parseLongDate(s string, loc *time.Location) (time.Time, bool) {
	for _, layout := range []string{"January 2, 2006", "January 2 2006"} {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// slotDate recovers the calendar date carried by a formatted slot string,
// for chronological ordering.
func slotDate(text string, loc *time.Location) (time.Time, bool) {
	if m := isoDateRe.FindString(text); m != "" {
		if t, err := time.ParseInLocation("2006-01-02", m, loc); err == nil {
			return t, true
		}
	}
	if m := longDateRe.FindString(text); m != "" {
		return parseLongDate(m, loc)
	}
	return time.Time{}, false
}
