package recurrence

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatLegacySlot_AlreadyDated(t *testing.T) {
	ref := at(2025, time.May, 6, 0, 0)
	text := "May 10, 2025 9 AM - 5 PM"

	got, ok := FormatLegacySlot(text, ref)
	require.True(t, ok)
	assert.Equal(t, text, got, "dated text passes through unchanged")
}

func TestFormatLegacySlot_Idempotent(t *testing.T) {
	ref := at(2025, time.May, 6, 0, 0)

	once, ok := FormatLegacySlot("Monday 9 AM - 5 PM", ref)
	require.True(t, ok)
	twice, ok := FormatLegacySlot(once, ref)
	require.True(t, ok)
	assert.Equal(t, once, twice)
}

func TestFormatLegacySlot_WeekdayPrefix(t *testing.T) {
	// 2025-05-06 is a Tuesday; the next Monday is the 12th.
	ref := at(2025, time.May, 6, 0, 0)

	got, ok := FormatLegacySlot("Monday 9 AM - 5 PM", ref)
	require.True(t, ok)
	assert.Equal(t, "May 12, 2025 9 AM - 5 PM", got)
}

func TestFormatLegacySlot_FallbackTomorrow(t *testing.T) {
	ref := at(2025, time.May, 6, 0, 0)

	got, ok := FormatLegacySlot("9 AM - 5 PM", ref)
	require.True(t, ok)
	assert.Equal(t, "May 7, 2025 9 AM - 5 PM", got)
}

func TestFormatLegacySlot_Empty(t *testing.T) {
	_, ok := FormatLegacySlot("   ", at(2025, time.May, 6, 0, 0))
	assert.False(t, ok)
}
