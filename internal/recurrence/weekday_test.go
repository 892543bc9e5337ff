package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeekday(t *testing.T) {
	w, err := ParseWeekday("Monday")
	require.NoError(t, err)
	assert.Equal(t, time.Monday, w)

	w, err = ParseWeekday("  sunday ")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, w)

	_, err = ParseWeekday("Mon")
	assert.Error(t, err, "abbreviations are not part of the vocabulary")
}

func TestParseMonth(t *testing.T) {
	m, err := ParseMonth("august")
	require.NoError(t, err)
	assert.Equal(t, time.August, m)

	_, err = ParseMonth("Aug")
	assert.Error(t, err)
}

func TestNextWeekday(t *testing.T) {
	// 2025-05-12 is a Monday.
	monday := time.Date(2025, time.May, 12, 0, 0, 0, 0, time.UTC)

	got := NextWeekday(monday, time.Tuesday)
	assert.Equal(t, time.Date(2025, time.May, 13, 0, 0, 0, 0, time.UTC), got)

	got = NextWeekday(monday, time.Sunday)
	assert.Equal(t, time.Date(2025, time.May, 18, 0, 0, 0, 0, time.UTC), got)
}

func TestNextWeekday_NeverSameDay(t *testing.T) {
	// Asking for Monday on a Monday means next week's Monday, not today.
	monday := time.Date(2025, time.May, 12, 0, 0, 0, 0, time.UTC)
	got := NextWeekday(monday, time.Monday)
	assert.Equal(t, time.Date(2025, time.May, 19, 0, 0, 0, 0, time.UTC), got)
}
