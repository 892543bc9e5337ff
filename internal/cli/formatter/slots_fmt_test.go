package formatter

import (
	"testing"
	"time"

	"github.com/mkoschel/slotcal/internal/contract"
	"github.com/mkoschel/slotcal/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatSlotList(t *testing.T) {
	out := FormatSlotList(&contract.UpcomingSlotsResponse{
		CompanyCode: "DSP1042",
		Slots: []string{
			"May 12, 2025 9:00 AM - 5:00 PM",
			"May 19, 2025 9:00 AM - 5:00 PM",
		},
		Warnings: []string{"skipping rule abc: weekly rule requires a weekday"},
	})

	assert.Contains(t, out, "DSP1042")
	assert.Contains(t, out, "1.")
	assert.Contains(t, out, "May 12, 2025 9:00 AM - 5:00 PM")
	assert.Contains(t, out, "skipping rule abc")
}

func TestFormatSlotListEmpty(t *testing.T) {
	out := FormatSlotList(&contract.UpcomingSlotsResponse{CompanyCode: "DSP1042"})
	assert.Contains(t, out, "No upcoming slots.")
}

func TestDescribeRule(t *testing.T) {
	tests := []struct {
		name string
		rule domain.SlotRule
		want string
	}{
		{
			name: "weekly range",
			rule: domain.SlotRule{Kind: "weekly", Weekday: "Monday", StartTime: "9:00 AM", EndTime: "5:00 PM"},
			want: "weekly, on Monday, 9:00 AM - 5:00 PM",
		},
		{
			name: "monthly by position",
			rule: domain.SlotRule{Kind: "monthly", Weekday: "Tuesday", Positions: []string{"first", "third"}, StartTime: "2 PM"},
			want: "monthly, on the first/third Tuesday, 2 PM",
		},
		{
			name: "monthly by day",
			rule: domain.SlotRule{Kind: "monthly", DayOfMonth: 15, StartTime: "10 AM"},
			want: "monthly, day 15, 10 AM",
		},
		{
			name: "seasonal",
			rule: domain.SlotRule{Kind: "seasonal", Weekday: "Friday", Months: []string{"June", "July"}, StartTime: "9 AM"},
			want: "seasonal, on Friday, in June/July, 9 AM",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeRule(&tt.rule))
		})
	}
}

func TestFormatRuleListValidityWindow(t *testing.T) {
	from := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	out := FormatRuleList([]*domain.SlotRule{
		{ID: "abcdef1234", Kind: "weekly", Weekday: "Monday", StartTime: "9 AM", ValidFrom: &from},
	})

	assert.Contains(t, out, "abcdef12")
	assert.Contains(t, out, "from 2025-06-01")
}

func TestFormatDecisionWithSchedule(t *testing.T) {
	out := FormatDecision(&contract.DecisionResult{
		ApplicantID: "abcdef1234567890",
		Status:      "passed",
		Schedule: &contract.ScheduleInfo{
			Slot:  "May 12, 2025 at 2:00 PM",
			Date:  "2025-05-12",
			Clock: "2:00 PM",
		},
	})

	assert.Contains(t, out, "passed")
	assert.Contains(t, out, "May 12, 2025 at 2:00 PM")
	assert.Contains(t, out, "2025-05-12")
}

func TestFormatDecisionWithoutSchedule(t *testing.T) {
	out := FormatDecision(&contract.DecisionResult{ApplicantID: "abc", Status: "failed"})
	assert.Contains(t, out, "failed")
	assert.NotContains(t, out, "Interview")
}

func TestFormatApplicantListScheduledColumn(t *testing.T) {
	out := FormatApplicantList([]*domain.Applicant{
		{ID: "id-1", Name: "Jordan Diaz", Status: domain.ApplicantPassed, ScheduledDate: "2025-05-12", ScheduledTime: "2:00 PM"},
		{ID: "id-2", Name: "Sam Okafor", Status: domain.ApplicantPending},
	})

	assert.Contains(t, out, "Jordan Diaz")
	assert.Contains(t, out, "2025-05-12 2:00 PM")
	assert.Contains(t, out, "Sam Okafor")
}
