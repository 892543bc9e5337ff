package contract

import "time"

// UpcomingSlotsRequest asks for the next interview openings for a company.
// Now pins the reference instant; when nil the service uses the wall clock.
type UpcomingSlotsRequest struct {
	CompanyCode string
	PerRule     int
	Now         *time.Time
}

func NewUpcomingSlotsRequest(companyCode string) UpcomingSlotsRequest {
	return UpcomingSlotsRequest{
		CompanyCode: companyCode,
		PerRule:     3,
	}
}

type UpcomingSlotsResponse struct {
	GeneratedAt time.Time
	CompanyCode string
	Slots       []string
	Warnings    []string
}

type SlotsErrorCode string

const (
	ErrCompanyNotFound SlotsErrorCode = "COMPANY_NOT_FOUND"
	ErrNoSlotRules     SlotsErrorCode = "NO_SLOT_RULES"
	ErrInvalidRule     SlotsErrorCode = "INVALID_RULE"
)

type SlotsError struct {
	Code    SlotsErrorCode
	Message string
}

func (e *SlotsError) Error() string {
	return string(e.Code) + ": " + e.Message
}
