package service

import (
	"context"
	"testing"

	"github.com/mkoschel/slotcal/internal/contract"
	"github.com/mkoschel/slotcal/internal/domain"
	"github.com/mkoschel/slotcal/internal/repository"
	"github.com/mkoschel/slotcal/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type screeningFixture struct {
	companies CompanyService
	screening ScreeningService
	company   *domain.Company
}

func newScreeningFixture(t *testing.T) *screeningFixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	companyRepo := repository.NewSQLiteCompanyRepo(database)
	questionRepo := repository.NewSQLiteQuestionRepo(database)
	applicantRepo := repository.NewSQLiteApplicantRepo(database)

	f := &screeningFixture{
		companies: NewCompanyService(companyRepo, questionRepo),
		screening: NewScreeningService(companyRepo, applicantRepo),
		company:   &domain.Company{Code: "DSP1042", Name: "Test Logistics"},
	}
	require.NoError(t, f.companies.Register(context.Background(), f.company))
	return f
}

func (f *screeningFixture) register(t *testing.T, name string) *domain.Applicant {
	t.Helper()
	a := &domain.Applicant{CompanyID: f.company.ID, Name: name}
	require.NoError(t, f.screening.Register(context.Background(), a))
	return a
}

func TestScreeningService_RegisterDefaultsPending(t *testing.T) {
	f := newScreeningFixture(t)

	a := f.register(t, "Jordan Diaz")
	assert.NotEmpty(t, a.ID)
	assert.Equal(t, domain.ApplicantPending, a.Status)
}

func TestScreeningService_RegisterUnknownCompany(t *testing.T) {
	f := newScreeningFixture(t)

	err := f.screening.Register(context.Background(), &domain.Applicant{
		CompanyID: "missing", Name: "Jordan Diaz",
	})
	assert.Error(t, err)
}

func TestScreeningService_DecideFailed(t *testing.T) {
	f := newScreeningFixture(t)
	ctx := context.Background()
	a := f.register(t, "Jordan Diaz")

	result, err := f.screening.Decide(ctx, contract.DecisionRequest{
		ApplicantID: a.ID,
		Passed:      false,
		Responses:   map[string]any{"valid_license": "No"},
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.ApplicantFailed), result.Status)
	assert.Nil(t, result.Schedule)
}

func TestScreeningService_DecidePassedSchedulesInterview(t *testing.T) {
	f := newScreeningFixture(t)
	ctx := context.Background()
	a := f.register(t, "Jordan Diaz")

	result, err := f.screening.Decide(ctx, contract.DecisionRequest{
		ApplicantID: a.ID,
		Passed:      true,
		Responses: map[string]any{
			"valid_license":      "Yes",
			"selected_time_slot": "May 12, 2025 at 2:00 PM",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.ApplicantPassed), result.Status)
	require.NotNil(t, result.Schedule)
	assert.Equal(t, "May 12, 2025 at 2:00 PM", result.Schedule.Slot)
	assert.Equal(t, "2025-05-12", result.Schedule.Date)
	assert.Equal(t, "2:00 PM", result.Schedule.Clock)

	got, err := f.screening.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ApplicantPassed, got.Status)
	assert.Equal(t, "2025-05-12", got.ScheduledDate)
	assert.Equal(t, "2:00 PM", got.ScheduledTime)
}

func TestScreeningService_DecidePassedFromKeywordKey(t *testing.T) {
	f := newScreeningFixture(t)
	ctx := context.Background()
	a := f.register(t, "Jordan Diaz")

	result, err := f.screening.Decide(ctx, contract.DecisionRequest{
		ApplicantID: a.ID,
		Passed:      true,
		Responses: map[string]any{
			"interview_time": "Monday at 2 PM",
			"valid_license":  "Yes",
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result.Schedule)
	assert.Equal(t, "Monday at 2 PM", result.Schedule.Slot)
	assert.Equal(t, "2:00 PM", result.Schedule.Clock)
	assert.Empty(t, result.Schedule.Date, "no date in the chosen slot text")
}

func TestScreeningService_DecidePassedWithoutSlot(t *testing.T) {
	f := newScreeningFixture(t)
	ctx := context.Background()
	a := f.register(t, "Jordan Diaz")

	result, err := f.screening.Decide(ctx, contract.DecisionRequest{
		ApplicantID: a.ID,
		Passed:      true,
		Responses:   map[string]any{"valid_license": "Yes"},
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.ApplicantPassed), result.Status)
	assert.Nil(t, result.Schedule)

	got, err := f.screening.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, got.ScheduledDate)
}
