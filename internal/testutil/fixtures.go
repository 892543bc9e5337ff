package testutil

import (
	"time"

	"github.com/google/uuid"
	"github.com/mkoschel/slotcal/internal/domain"
)

// FixedNow is a stable reference instant for tests: Tuesday, May 6, 2025.
var FixedNow = time.Date(2025, time.May, 6, 8, 0, 0, 0, time.UTC)

// MakeCompany returns a persistable company with sensible defaults.
func MakeCompany(code string) *domain.Company {
	return &domain.Company{
		ID:   uuid.New().String(),
		Code: code,
		Name: "Test Logistics " + code,
		Contact: domain.ContactInfo{
			PersonName: "Casey Morgan",
			Number:     "555-0142",
			Email:      "casey@example.com",
		},
		CreatedAt: FixedNow,
		UpdatedAt: FixedNow,
	}
}

// MakeWeeklyRule returns a weekly slot rule for the given company.
func MakeWeeklyRule(companyID, weekday, start, end string) *domain.SlotRule {
	return &domain.SlotRule{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Kind:      "weekly",
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
		CreatedAt: FixedNow,
		UpdatedAt: FixedNow,
	}
}

// MakeApplicant returns a pending applicant for the given company.
func MakeApplicant(companyID, name string) *domain.Applicant {
	return &domain.Applicant{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      name,
		Status:    domain.ApplicantPending,
		CreatedAt: FixedNow,
		UpdatedAt: FixedNow,
	}
}
