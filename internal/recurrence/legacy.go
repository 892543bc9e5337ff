package recurrence

import (
	"regexp"
	"strings"
	"time"
)

const displayDateLayout = "January 2, 2006"

// datedRe recognizes an explicit "Month Day, Year" substring, which marks a
// slot string as already carrying a concrete date.
var datedRe = regexp.MustCompile(`(?i)(january|february|march|april|may|june|july|august|september|october|november|december)\s+\d{1,2},\s*\d{4}`)

// FormatLegacySlot attaches a concrete date to a bare recurring slot string
// such as "Monday 9 AM - 5 PM". Text that already contains a "Month Day,
// Year" substring is returned unchanged, which makes the function
// idempotent. Text that starts with a weekday name gets the next occurrence
// of that weekday (per NextWeekday, never ref's own day). Anything else is
// anchored to the day after ref as a best effort; callers should not treat
// that fallback as authoritative.
func FormatLegacySlot(text string, ref time.Time) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	if datedRe.MatchString(text) {
		return text, true
	}

	fields := strings.Fields(text)
	if w, err := ParseWeekday(strings.TrimSuffix(fields[0], ",")); err == nil {
		date := NextWeekday(ref, w).Format(displayDateLayout)
		rest := strings.TrimSpace(text[len(fields[0]):])
		if rest == "" {
			return date, true
		}
		return date + " " + rest, true
	}

	return ref.AddDate(0, 0, 1).Format(displayDateLayout) + " " + text, true
}
