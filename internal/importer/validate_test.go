package importer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSchema() *CompanySchema {
	return &CompanySchema{
		Company: CompanyImport{Code: "DSP1042", Name: "Test Logistics"},
		Questions: []string{
			"Do you have a valid license?",
			"Can you lift 50 lbs?",
		},
		SlotRules: []SlotRuleImport{
			{Kind: "weekly", Weekday: "Monday", StartTime: "9 AM", EndTime: "5 PM"},
			{Kind: "monthly", Weekday: "Tuesday", Positions: []string{"first", "third"}, StartTime: "2 PM"},
		},
		AdhocSlots: []string{"May 10, 2025 9 AM - 5 PM"},
	}
}

func TestValidateCompanySchema_Valid(t *testing.T) {
	assert.Empty(t, ValidateCompanySchema(validSchema()))
}

func TestValidateCompanySchema_MissingIdentity(t *testing.T) {
	schema := validSchema()
	schema.Company.Code = " "
	schema.Company.Name = ""

	errs := ValidateCompanySchema(schema)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "company.code")
	assert.Contains(t, errs[1].Error(), "company.name")
}

func TestValidateCompanySchema_DuplicateQuestion(t *testing.T) {
	schema := validSchema()
	schema.Questions = append(schema.Questions, "Do you have a valid license?")

	errs := ValidateCompanySchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "duplicate question")
}

func TestValidateCompanySchema_BadRule(t *testing.T) {
	schema := validSchema()
	schema.SlotRules = append(schema.SlotRules, SlotRuleImport{Kind: "weekly", StartTime: "9 AM"})

	errs := ValidateCompanySchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "slot_rules[2]")
}

func TestValidateCompanySchema_ValidityWindow(t *testing.T) {
	from := "2025-06-01"
	until := "2025-05-01"
	schema := validSchema()
	schema.SlotRules[0].ValidFrom = &from
	schema.SlotRules[0].ValidUntil = &until

	errs := ValidateCompanySchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "valid_until")
}

func TestValidateCompanySchema_BadDate(t *testing.T) {
	bad := "06/01/2025"
	schema := validSchema()
	schema.SlotRules[0].ValidFrom = &bad

	errs := ValidateCompanySchema(schema)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "invalid date format")
}
