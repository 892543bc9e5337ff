package recurrence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	tests := []struct {
		name  string
		input string
		date  string
		clock string
	}{
		{
			name:  "long date with range",
			input: "May 10, 2025 9 AM - 5 PM",
			date:  "2025-05-10",
			clock: "9:00 AM",
		},
		{
			name:  "iso date with minutes",
			input: "2025-05-29 10:30 AM",
			date:  "2025-05-29",
			clock: "10:30 AM",
		},
		{
			name:  "long date without comma",
			input: "Scheduled for March 15 2026 at 2 PM",
			date:  "2026-03-15",
			clock: "2:00 PM",
		},
		{
			name:  "time only",
			input: "around 11 AM works",
			clock: "11:00 AM",
		},
		{
			name:  "from-to phrasing",
			input: "anytime from 12 PM to 2 PM",
			clock: "12:00 PM",
		},
		{
			name:  "date only",
			input: "June 3, 2025",
			date:  "2025-06-03",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseSlot(tt.input)
			require.True(t, ok)
			assert.Equal(t, tt.date, got.Date)
			assert.Equal(t, tt.clock, got.Clock)
		})
	}
}

func TestParseSlot_NonAnswers(t *testing.T) {
	for _, input := range []string{"", "Yes", "N/A", "no preference"} {
		t.Run(input, func(t *testing.T) {
			_, ok := ParseSlot(input)
			assert.False(t, ok)
		})
	}
}
