package contract

// DecisionRequest records the outcome of a screening conversation. Responses
// carries the raw question/answer map collected by the interviewer.
type DecisionRequest struct {
	ApplicantID string
	Passed      bool
	Responses   map[string]any
}

// ScheduleInfo is the normalized interview booking derived from an
// applicant's responses. Date uses "2006-01-02" and Clock "3:04 PM";
// either may be empty when the slot text could not be parsed that far.
type ScheduleInfo struct {
	Slot  string
	Date  string
	Clock string
}

type DecisionResult struct {
	ApplicantID string
	Status      string
	Schedule    *ScheduleInfo
}
