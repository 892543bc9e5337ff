package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/mkoschel/slotcal/internal/recurrence"
)

// ValidateCompanySchema checks the import schema for errors before
// conversion. Returns a slice of all validation errors found.
func ValidateCompanySchema(schema *CompanySchema) []error {
	var errs []error

	errs = append(errs, validateCompany(&schema.Company)...)
	errs = append(errs, validateQuestions(schema.Questions)...)
	errs = append(errs, validateSlotRules(schema.SlotRules)...)
	errs = append(errs, validateAdhocSlots(schema.AdhocSlots)...)

	return errs
}

func validateCompany(c *CompanyImport) []error {
	var errs []error

	if strings.TrimSpace(c.Code) == "" {
		errs = append(errs, fmt.Errorf("company.code is required"))
	}
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, fmt.Errorf("company.name is required"))
	}

	return errs
}

func validateQuestions(questions []string) []error {
	var errs []error

	seen := make(map[string]bool)
	for i, q := range questions {
		prefix := fmt.Sprintf("questions[%d]", i)
		q = strings.TrimSpace(q)
		if q == "" {
			errs = append(errs, fmt.Errorf("%s is empty", prefix))
			continue
		}
		if seen[q] {
			errs = append(errs, fmt.Errorf("%s: duplicate question %q", prefix, q))
		}
		seen[q] = true
	}

	return errs
}

func validateSlotRules(rules []SlotRuleImport) []error {
	var errs []error

	for i, r := range rules {
		prefix := fmt.Sprintf("slot_rules[%d]", i)

		// The recurrence builder performs the per-kind field checks.
		_, err := recurrence.BuildDescriptor(recurrence.Spec{
			Kind:       r.Kind,
			Weekday:    r.Weekday,
			Positions:  r.Positions,
			DayOfMonth: r.DayOfMonth,
			Months:     r.Months,
			StartTime:  r.StartTime,
			EndTime:    r.EndTime,
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", prefix, err))
		}

		from, fromErrs := parseOptionalDate(prefix+".valid_from", r.ValidFrom)
		errs = append(errs, fromErrs...)
		until, untilErrs := parseOptionalDate(prefix+".valid_until", r.ValidUntil)
		errs = append(errs, untilErrs...)
		if from != nil && until != nil && until.Before(*from) {
			errs = append(errs, fmt.Errorf("%s: valid_until %q is before valid_from %q", prefix, *r.ValidUntil, *r.ValidFrom))
		}
	}

	return errs
}

func validateAdhocSlots(slots []string) []error {
	var errs []error

	for i, s := range slots {
		if strings.TrimSpace(s) == "" {
			errs = append(errs, fmt.Errorf("adhoc_slots[%d] is empty", i))
		}
	}

	return errs
}

func parseOptionalDate(field string, dateStr *string) (*time.Time, []error) {
	if dateStr == nil || *dateStr == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *dateStr)
	if err != nil {
		return nil, []error{fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", field, *dateStr)}
	}
	return &t, nil
}
