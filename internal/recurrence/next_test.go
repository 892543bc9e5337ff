package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func mustMonthlyByWeekday(t *testing.T, w time.Weekday, positions []WeekPosition, start TimeOfDay) Descriptor {
	t.Helper()
	d, err := NewMonthlyByWeekday(w, positions, start, nil)
	require.NoError(t, err)
	return d
}

func TestNextOccurrence_Daily(t *testing.T) {
	d := NewDaily(TimeOfDay{Hour: 9}, nil)

	// Before today's slot: same day.
	next, ok := NextOccurrence(d, at(2025, time.May, 12, 8, 0))
	require.True(t, ok)
	assert.Equal(t, at(2025, time.May, 12, 9, 0), next)

	// At the slot exactly: strictly-after means tomorrow.
	next, ok = NextOccurrence(d, at(2025, time.May, 12, 9, 0))
	require.True(t, ok)
	assert.Equal(t, at(2025, time.May, 13, 9, 0), next)
}

func TestNextOccurrence_Weekly_NeverSameDay(t *testing.T) {
	d := NewWeekly(time.Monday, TimeOfDay{Hour: 13}, nil)

	// 2025-05-12 is a Monday; even early that morning the next weekly
	// occurrence is the following Monday.
	next, ok := NextOccurrence(d, at(2025, time.May, 12, 8, 0))
	require.True(t, ok)
	assert.Equal(t, at(2025, time.May, 19, 13, 0), next)
}

func TestNextOccurrence_MonthlyByDay(t *testing.T) {
	d, err := NewMonthlyByDay(15, TimeOfDay{Hour: 10}, nil)
	require.NoError(t, err)

	next, ok := NextOccurrence(d, at(2025, time.May, 10, 0, 0))
	require.True(t, ok)
	assert.Equal(t, at(2025, time.May, 15, 10, 0), next)

	next, ok = NextOccurrence(d, at(2025, time.May, 20, 0, 0))
	require.True(t, ok)
	assert.Equal(t, at(2025, time.June, 15, 10, 0), next)
}

func TestNextOccurrence_MonthlyByDay_ClampsShortMonth(t *testing.T) {
	d, err := NewMonthlyByDay(31, TimeOfDay{Hour: 9}, nil)
	require.NoError(t, err)

	// After January 31st the next candidate is in February, which has no
	// 31st; the day clamps to the 28th (2025 is not a leap year).
	next, ok := NextOccurrence(d, at(2025, time.January, 31, 10, 0))
	require.True(t, ok)
	assert.Equal(t, at(2025, time.February, 28, 9, 0), next)
}

func TestNextOccurrence_MonthlyByWeekday_FirstAndThird(t *testing.T) {
	// May 2025 Mondays fall on the 5th, 12th, 19th and 26th.
	d := mustMonthlyByWeekday(t, time.Monday, []WeekPosition{PositionFirst, PositionThird}, TimeOfDay{Hour: 13})

	// From the first Monday at the slot time itself, the next occurrence
	// is the third Monday of the same month, not next month's first.
	next, ok := NextOccurrence(d, at(2025, time.May, 5, 13, 0))
	require.True(t, ok)
	assert.Equal(t, at(2025, time.May, 19, 13, 0), next)

	// Past the third Monday the rule rolls into June (first Monday: the 2nd).
	next, ok = NextOccurrence(d, at(2025, time.May, 19, 13, 0))
	require.True(t, ok)
	assert.Equal(t, at(2025, time.June, 2, 13, 0), next)
}

func TestNextOccurrence_MonthlyByWeekday_Last(t *testing.T) {
	d := mustMonthlyByWeekday(t, time.Monday, []WeekPosition{PositionLast}, TimeOfDay{Hour: 9})

	next, ok := NextOccurrence(d, at(2025, time.May, 1, 0, 0))
	require.True(t, ok)
	assert.Equal(t, at(2025, time.May, 26, 9, 0), next, "last Monday of May 2025")
}

func TestNextOccurrence_Yearly_Rollover(t *testing.T) {
	d, err := NewYearly(time.January, 15, TimeOfDay{Hour: 9}, nil)
	require.NoError(t, err)

	next, ok := NextOccurrence(d, at(2025, time.February, 1, 0, 0))
	require.True(t, ok)
	assert.Equal(t, at(2026, time.January, 15, 9, 0), next)

	next, ok = NextOccurrence(d, at(2025, time.January, 2, 0, 0))
	require.True(t, ok)
	assert.Equal(t, at(2025, time.January, 15, 9, 0), next)
}

func TestNextOccurrence_Seasonal(t *testing.T) {
	d, err := NewSeasonal(time.Tuesday, []time.Month{time.August}, TimeOfDay{Hour: 9}, nil)
	require.NoError(t, err)

	// From July: the first Tuesday of August this year.
	next, ok := NextOccurrence(d, at(2025, time.July, 15, 0, 0))
	require.True(t, ok)
	assert.Equal(t, at(2025, time.August, 5, 9, 0), next)

	// Mid-August: the following Tuesday of the same month.
	next, ok = NextOccurrence(d, at(2025, time.August, 5, 10, 0))
	require.True(t, ok)
	assert.Equal(t, at(2025, time.August, 12, 9, 0), next)

	// From September: next year's August.
	next, ok = NextOccurrence(d, at(2025, time.September, 1, 0, 0))
	require.True(t, ok)
	assert.Equal(t, at(2026, time.August, 4, 9, 0), next)
}

func TestNextOccurrence_IncompleteDescriptor(t *testing.T) {
	// Missing required fields produce absence, never a panic or error.
	_, ok := NextOccurrence(Descriptor{Kind: PatternWeekly, Start: TimeOfDay{Hour: 9}}, at(2025, time.May, 1, 0, 0))
	assert.False(t, ok)

	_, ok = NextOccurrence(Descriptor{Kind: "hourly"}, at(2025, time.May, 1, 0, 0))
	assert.False(t, ok)
}

func TestNextOccurrence_StrictlyAfterReference(t *testing.T) {
	start := TimeOfDay{Hour: 9}
	rules := []Descriptor{
		NewDaily(start, nil),
		NewWeekly(time.Wednesday, start, nil),
		mustMonthlyByWeekday(t, time.Friday, []WeekPosition{PositionSecond, PositionLast}, start),
	}
	monthly, err := NewMonthlyByDay(31, start, nil)
	require.NoError(t, err)
	yearly, err := NewYearly(time.February, 29, start, nil)
	require.NoError(t, err)
	seasonal, err := NewSeasonal(time.Sunday, []time.Month{time.December, time.January}, start, nil)
	require.NoError(t, err)
	rules = append(rules, monthly, yearly, seasonal)

	refs := []time.Time{
		at(2025, time.January, 1, 0, 0),
		at(2025, time.February, 28, 9, 0),
		at(2025, time.December, 31, 23, 59),
		at(2024, time.February, 29, 9, 0),
	}
	for _, d := range rules {
		for _, ref := range refs {
			next, ok := NextOccurrence(d, ref)
			require.True(t, ok)
			assert.True(t, next.After(ref), "kind %s: %v must be after %v", d.Kind, next, ref)
		}
	}
}
