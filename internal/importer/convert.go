package importer

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mkoschel/slotcal/internal/domain"
)

// ConvertResult holds the domain entities built from a validated schema.
// The company ID is already assigned and referenced by all child entities.
type ConvertResult struct {
	Company   *domain.Company
	Questions []*domain.ScreeningQuestion
	Rules     []*domain.SlotRule
	Adhoc     []*domain.AdhocSlot
}

// ConvertCompanySchema turns a validated schema into domain entities.
// Call ValidateCompanySchema first; conversion assumes the schema is sound.
func ConvertCompanySchema(schema *CompanySchema, now time.Time) *ConvertResult {
	company := &domain.Company{
		ID:        uuid.New().String(),
		Code:      strings.ToUpper(strings.TrimSpace(schema.Company.Code)),
		Name:      strings.TrimSpace(schema.Company.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if c := schema.Company.Contact; c != nil {
		company.Contact = domain.ContactInfo{
			PersonName: c.Name,
			Number:     c.Number,
			Email:      c.Email,
		}
	}

	result := &ConvertResult{Company: company}

	for i, q := range schema.Questions {
		result.Questions = append(result.Questions, &domain.ScreeningQuestion{
			ID:         uuid.New().String(),
			CompanyID:  company.ID,
			Text:       strings.TrimSpace(q),
			OrderIndex: i,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}

	for _, r := range schema.SlotRules {
		rule := &domain.SlotRule{
			ID:         uuid.New().String(),
			CompanyID:  company.ID,
			Kind:       r.Kind,
			Weekday:    r.Weekday,
			Positions:  r.Positions,
			DayOfMonth: r.DayOfMonth,
			Months:     r.Months,
			StartTime:  r.StartTime,
			EndTime:    r.EndTime,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		rule.ValidFrom, _ = parseOptionalDate("", r.ValidFrom)
		rule.ValidUntil, _ = parseOptionalDate("", r.ValidUntil)
		result.Rules = append(result.Rules, rule)
	}

	for _, s := range schema.AdhocSlots {
		result.Adhoc = append(result.Adhoc, &domain.AdhocSlot{
			ID:        uuid.New().String(),
			CompanyID: company.ID,
			Text:      strings.TrimSpace(s),
			CreatedAt: now,
		})
	}

	return result
}
