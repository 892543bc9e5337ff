package domain

import "time"

// Applicant is a driver going through a company's screening conversation.
// Responses holds the raw document the conversation produced; the selected
// slot and schedule fields are filled in when a passing decision is
// recorded.
type Applicant struct {
	ID        string
	CompanyID string
	Name      string
	Status    ApplicantStatus
	Responses map[string]any

	SelectedSlot  string
	ScheduledDate string // "2006-01-02"
	ScheduledTime string // "3:04 PM"

	CreatedAt time.Time
	UpdatedAt time.Time
}
