package recurrence

import (
	"fmt"
	"strings"
	"time"
)

// PatternKind identifies how a recurrence rule repeats.
type PatternKind string

const (
	PatternDaily    PatternKind = "daily"
	PatternWeekly   PatternKind = "weekly"
	PatternMonthly  PatternKind = "monthly"
	PatternYearly   PatternKind = "yearly"
	PatternSeasonal PatternKind = "seasonal"
)

// ValidPatternKinds is the canonical set of accepted pattern kind strings.
var ValidPatternKinds = map[string]bool{
	"daily": true, "weekly": true, "monthly": true, "yearly": true, "seasonal": true,
}

// WeekPosition selects an occurrence of a weekday within a month.
// There is deliberately no "fifth"; months that would need it fall back
// one week instead.
type WeekPosition string

const (
	PositionFirst  WeekPosition = "first"
	PositionSecond WeekPosition = "second"
	PositionThird  WeekPosition = "third"
	PositionFourth WeekPosition = "fourth"
	PositionLast   WeekPosition = "last"
)

var weekPositionOrdinal = map[WeekPosition]int{
	PositionFirst:  1,
	PositionSecond: 2,
	PositionThird:  3,
	PositionFourth: 4,
}

// ParseWeekPosition resolves "first".."fourth" or "last", case-insensitively.
func ParseWeekPosition(s string) (WeekPosition, error) {
	p := WeekPosition(strings.ToLower(strings.TrimSpace(s)))
	if p != PositionLast {
		if _, ok := weekPositionOrdinal[p]; !ok {
			return "", fmt.Errorf("unknown week position: %q", s)
		}
	}
	return p, nil
}

// Descriptor is an immutable recurrence rule. Build one through the per-kind
// constructors so the fields a kind requires are present from the start;
// Validate rechecks them so rows rebuilt from storage degrade to "no
// occurrence" instead of panicking.
type Descriptor struct {
	Kind       PatternKind
	Weekday    *time.Weekday  // weekly, seasonal, monthly-by-weekday
	Positions  []WeekPosition // monthly-by-weekday only
	DayOfMonth int            // monthly-by-date and yearly; 0 when unset
	Months     []time.Month   // yearly (single), seasonal (one or more)
	Start      TimeOfDay
	End        *TimeOfDay // nil for point-in-time events

	// Validity window carried for the caller. NextOccurrence does not
	// consult these fields; filtering is the caller's responsibility.
	ValidFrom  *time.Time
	ValidUntil *time.Time
}

// NewDaily returns a rule recurring every calendar day.
func NewDaily(start TimeOfDay, end *TimeOfDay) Descriptor {
	return Descriptor{Kind: PatternDaily, Start: start, End: end}
}

// NewWeekly returns a rule recurring every week on the given weekday.
func NewWeekly(w time.Weekday, start TimeOfDay, end *TimeOfDay) Descriptor {
	return Descriptor{Kind: PatternWeekly, Weekday: &w, Start: start, End: end}
}

// NewMonthlyByDay returns a rule recurring on a fixed day of every month.
// Days past the end of a short month clamp to its last day.
func NewMonthlyByDay(day int, start TimeOfDay, end *TimeOfDay) (Descriptor, error) {
	if day < 1 || day > 31 {
		return Descriptor{}, fmt.Errorf("day of month %d out of range", day)
	}
	return Descriptor{Kind: PatternMonthly, DayOfMonth: day, Start: start, End: end}, nil
}

// NewMonthlyByWeekday returns a rule recurring on selected occurrences of a
// weekday every month, e.g. the first and third Monday.
func NewMonthlyByWeekday(w time.Weekday, positions []WeekPosition, start TimeOfDay, end *TimeOfDay) (Descriptor, error) {
	if len(positions) == 0 {
		return Descriptor{}, fmt.Errorf("at least one week position is required")
	}
	for _, p := range positions {
		if _, err := ParseWeekPosition(string(p)); err != nil {
			return Descriptor{}, err
		}
	}
	return Descriptor{Kind: PatternMonthly, Weekday: &w, Positions: positions, Start: start, End: end}, nil
}

// NewYearly returns a rule recurring once a year on a fixed month and day.
func NewYearly(month time.Month, day int, start TimeOfDay, end *TimeOfDay) (Descriptor, error) {
	if month < time.January || month > time.December {
		return Descriptor{}, fmt.Errorf("month %d out of range", month)
	}
	if day < 1 || day > 31 {
		return Descriptor{}, fmt.Errorf("day of month %d out of range", day)
	}
	return Descriptor{Kind: PatternYearly, Months: []time.Month{month}, DayOfMonth: day, Start: start, End: end}, nil
}

// NewSeasonal returns a rule recurring on a weekday within specific months
// of every year, e.g. every Tuesday in August.
func NewSeasonal(w time.Weekday, months []time.Month, start TimeOfDay, end *TimeOfDay) (Descriptor, error) {
	if len(months) == 0 {
		return Descriptor{}, fmt.Errorf("at least one month is required")
	}
	for _, m := range months {
		if m < time.January || m > time.December {
			return Descriptor{}, fmt.Errorf("month %d out of range", m)
		}
	}
	return Descriptor{Kind: PatternSeasonal, Weekday: &w, Months: months, Start: start, End: end}, nil
}

// Ranged reports whether the rule describes a time range rather than a
// point-in-time event.
func (d Descriptor) Ranged() bool {
	return d.End != nil
}

// Validate checks that the fields required by the descriptor's kind are
// populated and in range.
func (d Descriptor) Validate() error {
	switch d.Kind {
	case PatternDaily:
		return nil
	case PatternWeekly:
		if d.Weekday == nil {
			return fmt.Errorf("weekly rule missing weekday")
		}
	case PatternMonthly:
		if len(d.Positions) > 0 {
			if d.Weekday == nil {
				return fmt.Errorf("monthly rule with week positions missing weekday")
			}
			for _, p := range d.Positions {
				if _, err := ParseWeekPosition(string(p)); err != nil {
					return err
				}
			}
		} else if d.DayOfMonth < 1 || d.DayOfMonth > 31 {
			return fmt.Errorf("monthly rule needs a day of month or week positions")
		}
	case PatternYearly:
		if len(d.Months) != 1 {
			return fmt.Errorf("yearly rule needs exactly one month")
		}
		if d.DayOfMonth < 1 || d.DayOfMonth > 31 {
			return fmt.Errorf("yearly rule missing day of month")
		}
	case PatternSeasonal:
		if d.Weekday == nil {
			return fmt.Errorf("seasonal rule missing weekday")
		}
		if len(d.Months) == 0 {
			return fmt.Errorf("seasonal rule missing months")
		}
	default:
		return fmt.Errorf("unknown pattern kind: %q", d.Kind)
	}
	return nil
}

// Spec is the loosely-typed wire form of a recurrence rule, as it arrives
// from tool-call payloads and storage rows. BuildDescriptor validates it
// into a Descriptor.
type Spec struct {
	Kind       string
	Weekday    string
	Positions  []string
	DayOfMonth int
	Months     []string
	StartTime  string
	EndTime    string
}

// BuildDescriptor turns a loose Spec into a validated Descriptor. Every
// failure is a recoverable data-quality error; callers skip the rule.
func BuildDescriptor(s Spec) (Descriptor, error) {
	start, err := ParseTimeOfDay(s.StartTime)
	if err != nil {
		return Descriptor{}, err
	}
	var end *TimeOfDay
	if s.EndTime != "" {
		e, err := ParseTimeOfDay(s.EndTime)
		if err != nil {
			return Descriptor{}, err
		}
		end = &e
	}

	switch PatternKind(strings.ToLower(strings.TrimSpace(s.Kind))) {
	case PatternDaily:
		return NewDaily(start, end), nil

	case PatternWeekly:
		w, err := ParseWeekday(s.Weekday)
		if err != nil {
			return Descriptor{}, err
		}
		return NewWeekly(w, start, end), nil

	case PatternMonthly:
		if len(s.Positions) > 0 {
			w, err := ParseWeekday(s.Weekday)
			if err != nil {
				return Descriptor{}, err
			}
			positions := make([]WeekPosition, 0, len(s.Positions))
			for _, raw := range s.Positions {
				p, err := ParseWeekPosition(raw)
				if err != nil {
					return Descriptor{}, err
				}
				positions = append(positions, p)
			}
			return NewMonthlyByWeekday(w, positions, start, end)
		}
		return NewMonthlyByDay(s.DayOfMonth, start, end)

	case PatternYearly:
		if len(s.Months) != 1 {
			return Descriptor{}, fmt.Errorf("yearly rule needs exactly one month, got %d", len(s.Months))
		}
		m, err := ParseMonth(s.Months[0])
		if err != nil {
			return Descriptor{}, err
		}
		return NewYearly(m, s.DayOfMonth, start, end)

	case PatternSeasonal:
		w, err := ParseWeekday(s.Weekday)
		if err != nil {
			return Descriptor{}, err
		}
		months := make([]time.Month, 0, len(s.Months))
		for _, raw := range s.Months {
			m, err := ParseMonth(raw)
			if err != nil {
				return Descriptor{}, err
			}
			months = append(months, m)
		}
		return NewSeasonal(w, months, start, end)

	default:
		return Descriptor{}, fmt.Errorf("unknown pattern kind: %q", s.Kind)
	}
}
