package domain

import (
	"time"

	"github.com/mkoschel/slotcal/internal/recurrence"
)

// SlotRule is a stored recurrence rule owned by a company. Fields mirror
// recurrence.Spec: the row keeps the loose wire form, and evaluation
// revalidates it so an incomplete row degrades to "no occurrence" instead
// of failing a whole listing.
type SlotRule struct {
	ID         string
	CompanyID  string
	Kind       string
	Weekday    string
	Positions  []string
	DayOfMonth int
	Months     []string
	StartTime  string
	EndTime    string
	ValidFrom  *time.Time
	ValidUntil *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Spec returns the rule in the recurrence package's wire form.
func (r SlotRule) Spec() recurrence.Spec {
	return recurrence.Spec{
		Kind:       r.Kind,
		Weekday:    r.Weekday,
		Positions:  r.Positions,
		DayOfMonth: r.DayOfMonth,
		Months:     r.Months,
		StartTime:  r.StartTime,
		EndTime:    r.EndTime,
	}
}

// AdhocSlot is an unstructured slot string: either already dated
// ("May 10, 2025 9 AM - 5 PM") or a bare weekday pattern
// ("Monday 9 AM - 5 PM") left over from before structured rules existed.
type AdhocSlot struct {
	ID        string
	CompanyID string
	Text      string

	CreatedAt time.Time
}
