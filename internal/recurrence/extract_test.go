package recurrence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSelectedSlot_ExplicitField(t *testing.T) {
	got, ok := ExtractSelectedSlot(map[string]any{
		"selected_time_slot": "May 10, 2025 9 AM - 5 PM",
		"name":               "Jordan Reyes",
	})
	require.True(t, ok)
	assert.Equal(t, "May 10, 2025 9 AM - 5 PM", got)
}

func TestExtractSelectedSlot_SkipsNonAnswers(t *testing.T) {
	// "Yes" in the explicit field is a confirmation, not a slot; the
	// keyword scan picks up interview_time instead.
	got, ok := ExtractSelectedSlot(map[string]any{
		"selected_time_slot": "Yes",
		"interview_time":     "May 10, 2025 at 9:00 AM",
	})
	require.True(t, ok)
	assert.Equal(t, "May 10, 2025 at 9:00 AM", got)
}

func TestExtractSelectedSlot_KeyKeyword(t *testing.T) {
	got, ok := ExtractSelectedSlot(map[string]any{
		"has_license":         "Yes",
		"appointment_choice":  "Tuesday afternoon",
		"years_of_experience": "3",
	})
	require.True(t, ok)
	assert.Equal(t, "Tuesday afternoon", got)
}

func TestExtractSelectedSlot_ValueKeywordWithMeridiem(t *testing.T) {
	got, ok := ExtractSelectedSlot(map[string]any{
		"final_answer": "I am available at 9 AM for the interview",
	})
	require.True(t, ok)
	assert.Equal(t, "I am available at 9 AM for the interview", got)
}

func TestExtractSelectedSlot_MeridiemAloneIsNotEnough(t *testing.T) {
	// An AM/PM mention without a scheduling term must not be mistaken
	// for a slot.
	_, ok := ExtractSelectedSlot(map[string]any{
		"note": "I worked for AMC until 9 PM shifts ended",
	})
	assert.False(t, ok)
}

func TestExtractSelectedSlot_NoMatch(t *testing.T) {
	_, ok := ExtractSelectedSlot(map[string]any{
		"selected_time_slot": "N/A",
		"has_license":        "Yes",
		"age":                42,
	})
	assert.False(t, ok)
}

func TestExtractSelectedSlot_IgnoresNonStrings(t *testing.T) {
	got, ok := ExtractSelectedSlot(map[string]any{
		"interview_time": map[string]any{"nested": "ignored"},
		"schedule_pref":  "Friday 2 PM",
	})
	require.True(t, ok)
	assert.Equal(t, "Friday 2 PM", got)
}

func TestExtractSelectedSlot_Empty(t *testing.T) {
	_, ok := ExtractSelectedSlot(nil)
	assert.False(t, ok)
}
