package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// CompanySchema is the top-level JSON structure for company import. It
// carries everything needed to onboard a company in one file: identity,
// screening script, and interview availability.
type CompanySchema struct {
	Company    CompanyImport    `json:"company"`
	Questions  []string         `json:"questions,omitempty"`
	SlotRules  []SlotRuleImport `json:"slot_rules,omitempty"`
	AdhocSlots []string         `json:"adhoc_slots,omitempty"`
}

// CompanyImport defines the company-level fields in the import file.
type CompanyImport struct {
	Code    string         `json:"code"`
	Name    string         `json:"name"`
	Contact *ContactImport `json:"contact,omitempty"`
}

// ContactImport defines the contact person fields.
type ContactImport struct {
	Name   string `json:"name,omitempty"`
	Number string `json:"number,omitempty"`
	Email  string `json:"email,omitempty"`
}

// SlotRuleImport defines one recurrence rule in the import file. Field
// values use the same loose text forms the CLI accepts ("Monday",
// "first", "9 AM").
type SlotRuleImport struct {
	Kind       string   `json:"kind"`
	Weekday    string   `json:"weekday,omitempty"`
	Positions  []string `json:"positions,omitempty"`
	DayOfMonth int      `json:"day_of_month,omitempty"`
	Months     []string `json:"months,omitempty"`
	StartTime  string   `json:"start_time"`
	EndTime    string   `json:"end_time,omitempty"`
	ValidFrom  *string  `json:"valid_from,omitempty"`
	ValidUntil *string  `json:"valid_until,omitempty"`
}

// LoadCompanySchema reads and parses a company import JSON file.
func LoadCompanySchema(path string) (*CompanySchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var schema CompanySchema
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
