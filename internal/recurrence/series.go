package recurrence

import (
	"fmt"
	"sort"
	"time"
)

// Occurrence is one concrete future slot resolved from a descriptor.
type Occurrence struct {
	At  time.Time  // date with the rule's start time applied
	End *TimeOfDay // nil for point-in-time events
}

// String renders the occurrence for display: "May 12, 2025 at 1:00 PM" for
// a point-in-time event, "May 12, 2025 9:00 AM - 5:00 PM" for a range.
func (o Occurrence) String() string {
	start := TimeOfDay{Hour: o.At.Hour(), Minute: o.At.Minute()}
	if o.End == nil {
		return fmt.Sprintf("%s at %s", o.At.Format("January 2, 2006"), start)
	}
	return fmt.Sprintf("%s %s - %s", o.At.Format("January 2, 2006"), start, *o.End)
}

// Expand generates up to perRule future occurrences for every descriptor,
// starting strictly after ref, and returns them in one date-ascending list.
// A descriptor that stops producing occurrences contributes a partial
// series; that is a legitimate outcome, not an error.
func Expand(rules []Descriptor, perRule int, ref time.Time) []Occurrence {
	var out []Occurrence
	for _, d := range rules {
		cur := ref
		for i := 0; i < perRule; i++ {
			next, ok := NextOccurrence(d, cur)
			if !ok {
				break
			}
			out = append(out, Occurrence{At: next, End: d.End})
			// Nudge past the occurrence so the same instant is never
			// produced twice.
			cur = next.Add(time.Minute)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].At.Before(out[j].At) })
	return out
}

// ExpandStrings is Expand with display formatting applied.
func ExpandStrings(rules []Descriptor, perRule int, ref time.Time) []string {
	occurrences := Expand(rules, perRule, ref)
	out := make([]string, len(occurrences))
	for i, o := range occurrences {
		out[i] = o.String()
	}
	return out
}

// UpcomingSlots merges expanded descriptor occurrences with ad-hoc slot
// strings into one chronologically sorted display list. Ad-hoc strings are
// dated via FormatLegacySlot and ordered by the date they carry; strings
// whose date cannot be recovered sort last, in input order.
func UpcomingSlots(rules []Descriptor, adhoc []string, perRule int, ref time.Time) []string {
	type datedSlot struct {
		text  string
		at    time.Time
		dated bool
	}

	var slots []datedSlot
	for _, o := range Expand(rules, perRule, ref) {
		slots = append(slots, datedSlot{text: o.String(), at: o.At, dated: true})
	}
	for _, raw := range adhoc {
		text, ok := FormatLegacySlot(raw, ref)
		if !ok {
			continue
		}
		if at, ok := slotDate(text, ref.Location()); ok {
			slots = append(slots, datedSlot{text: text, at: at, dated: true})
		} else {
			slots = append(slots, datedSlot{text: text})
		}
	}

	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].dated != slots[j].dated {
			return slots[i].dated
		}
		return slots[i].at.Before(slots[j].at)
	})

	out := make([]string, len(slots))
	for i, s := range slots {
		out[i] = s.text
	}
	return out
}
