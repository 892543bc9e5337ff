package domain

import "time"

// ContactInfo is the screening contact a company exposes to applicants.
type ContactInfo struct {
	PersonName string
	Number     string
	Email      string
}

type Company struct {
	ID      string
	Code    string // short external identifier, e.g. "DSP1042"
	Name    string
	Contact ContactInfo

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ScreeningQuestion is one question the screening conversation asks an
// applicant, with the criteria a passing answer must meet.
type ScreeningQuestion struct {
	ID         string
	CompanyID  string
	Text       string
	Criteria   string
	OrderIndex int

	CreatedAt time.Time
	UpdatedAt time.Time
}
