package recurrence

import "time"

// NextOccurrence returns the earliest instant strictly after ref that
// satisfies the descriptor, with the rule's start time applied, in ref's
// location. The boolean is false when the descriptor is incomplete for its
// kind; callers skip the rule rather than fail.
func NextOccurrence(d Descriptor, ref time.Time) (time.Time, bool) {
	if err := d.Validate(); err != nil {
		return time.Time{}, false
	}

	switch d.Kind {
	case PatternDaily:
		return nextDaily(d, ref), true
	case PatternWeekly:
		return d.Start.At(NextWeekday(ref, *d.Weekday)), true
	case PatternMonthly:
		if len(d.Positions) > 0 {
			return nextMonthlyByWeekday(d, ref), true
		}
		return nextMonthlyByDay(d, ref), true
	case PatternYearly:
		return nextYearly(d, ref), true
	case PatternSeasonal:
		return nextSeasonal(d, ref), true
	}
	return time.Time{}, false
}

func nextDaily(d Descriptor, ref time.Time) time.Time {
	cand := d.Start.At(ref)
	if !cand.After(ref) {
		cand = cand.AddDate(0, 0, 1)
	}
	return cand
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month, loc *time.Location) int {
	// Day zero of the following month is this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

// clampDay limits day to the last valid day of the month, so "the 31st of
// every month" lands on Feb 28/29 rather than failing.
func clampDay(year int, month time.Month, day int, loc *time.Location) int {
	if n := daysIn(year, month, loc); day > n {
		return n
	}
	return day
}

func monthDate(year int, month time.Month, day int, loc *time.Location) time.Time {
	return time.Date(year, month, clampDay(year, month, day, loc), 0, 0, 0, 0, loc)
}

func nextMonthlyByDay(d Descriptor, ref time.Time) time.Time {
	loc := ref.Location()
	cand := d.Start.At(monthDate(ref.Year(), ref.Month(), d.DayOfMonth, loc))
	if cand.After(ref) {
		return cand
	}
	next := time.Date(ref.Year(), ref.Month()+1, 1, 0, 0, 0, 0, loc)
	return d.Start.At(monthDate(next.Year(), next.Month(), d.DayOfMonth, loc))
}

// weekdayInMonth resolves a week position to a concrete date: "first"
// through "fourth" count forward from day 1, "last" counts backward from
// the month's final day. An Nth occurrence that overflows into the next
// month falls back one week.
func weekdayInMonth(year int, month time.Month, w time.Weekday, pos WeekPosition, loc *time.Location) time.Time {
	if pos == PositionLast {
		last := time.Date(year, month+1, 0, 0, 0, 0, 0, loc)
		back := (int(last.Weekday()) - int(w) + 7) % 7
		return last.AddDate(0, 0, -back)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	ahead := (int(w) - int(first.Weekday()) + 7) % 7
	date := first.AddDate(0, 0, ahead+7*(weekPositionOrdinal[pos]-1))
	if date.Month() != month {
		date = date.AddDate(0, 0, -7)
	}
	return date
}

func nextMonthlyByWeekday(d Descriptor, ref time.Time) time.Time {
	loc := ref.Location()
	year, month := ref.Year(), ref.Month()

	// The reference month may be exhausted; the following month always
	// yields a strictly future candidate, so two iterations suffice.
	for i := 0; i < 2; i++ {
		var best time.Time
		found := false
		for _, pos := range d.Positions {
			cand := d.Start.At(weekdayInMonth(year, month, *d.Weekday, pos, loc))
			if cand.After(ref) && (!found || cand.Before(best)) {
				best, found = cand, true
			}
		}
		if found {
			return best
		}
		next := time.Date(year, month+1, 1, 0, 0, 0, 0, loc)
		year, month = next.Year(), next.Month()
	}
	return time.Time{}
}

func nextYearly(d Descriptor, ref time.Time) time.Time {
	loc := ref.Location()
	month := d.Months[0]
	cand := d.Start.At(monthDate(ref.Year(), month, d.DayOfMonth, loc))
	if cand.After(ref) {
		return cand
	}
	return d.Start.At(monthDate(ref.Year()+1, month, d.DayOfMonth, loc))
}

func nextSeasonal(d Descriptor, ref time.Time) time.Time {
	loc := ref.Location()
	for year := ref.Year(); ; year++ {
		var best time.Time
		found := false
		for _, month := range d.Months {
			first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
			ahead := (int(*d.Weekday) - int(first.Weekday()) + 7) % 7
			for date := first.AddDate(0, 0, ahead); date.Month() == month; date = date.AddDate(0, 0, 7) {
				cand := d.Start.At(date)
				if cand.After(ref) {
					if !found || cand.Before(best) {
						best, found = cand, true
					}
					break
				}
			}
		}
		if found {
			return best
		}
	}
}
