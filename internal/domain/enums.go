package domain

type ApplicantStatus string

const (
	ApplicantPending ApplicantStatus = "pending"
	ApplicantPassed  ApplicantStatus = "passed"
	ApplicantFailed  ApplicantStatus = "failed"
)

// ValidApplicantStatuses is the canonical set of accepted status strings.
var ValidApplicantStatuses = map[string]bool{
	"pending": true, "passed": true, "failed": true,
}
