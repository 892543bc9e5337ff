package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mkoschel/slotcal/internal/contract"
	"github.com/mkoschel/slotcal/internal/domain"
	"github.com/mkoschel/slotcal/internal/recurrence"
	"github.com/mkoschel/slotcal/internal/repository"
)

type screeningService struct {
	companies  repository.CompanyRepo
	applicants repository.ApplicantRepo
}

func NewScreeningService(companies repository.CompanyRepo, applicants repository.ApplicantRepo) ScreeningService {
	return &screeningService{companies: companies, applicants: applicants}
}

func (s *screeningService) Register(ctx context.Context, a *domain.Applicant) error {
	if a.Name == "" {
		return fmt.Errorf("applicant name is required")
	}
	if _, err := s.companies.GetByID(ctx, a.CompanyID); err != nil {
		return fmt.Errorf("loading company: %w", err)
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if a.Status == "" {
		a.Status = domain.ApplicantPending
	}
	now := time.Now().UTC()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
	return s.applicants.Create(ctx, a)
}

func (s *screeningService) Get(ctx context.Context, id string) (*domain.Applicant, error) {
	return s.applicants.GetByID(ctx, id)
}

func (s *screeningService) ListByCompany(ctx context.Context, companyID string) ([]*domain.Applicant, error) {
	return s.applicants.ListByCompany(ctx, companyID)
}

// Decide records a screening outcome. A passing applicant has their chosen
// interview slot pulled out of the response map and normalized into a
// scheduled date and time; a slot that cannot be found or parsed leaves
// the applicant passed but unscheduled.
func (s *screeningService) Decide(ctx context.Context, req contract.DecisionRequest) (*contract.DecisionResult, error) {
	a, err := s.applicants.GetByID(ctx, req.ApplicantID)
	if err != nil {
		return nil, fmt.Errorf("loading applicant: %w", err)
	}

	if req.Responses != nil {
		a.Responses = req.Responses
	}

	result := &contract.DecisionResult{ApplicantID: a.ID}

	if !req.Passed {
		a.Status = domain.ApplicantFailed
	} else {
		a.Status = domain.ApplicantPassed
		if slot, ok := recurrence.ExtractSelectedSlot(a.Responses); ok {
			a.SelectedSlot = slot
			schedule := &contract.ScheduleInfo{Slot: slot}
			if info, ok := recurrence.ParseSlot(slot); ok {
				a.ScheduledDate = info.Date
				a.ScheduledTime = info.Clock
				schedule.Date = info.Date
				schedule.Clock = info.Clock
			}
			result.Schedule = schedule
		}
	}

	a.UpdatedAt = time.Now().UTC()
	if err := s.applicants.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("saving decision: %w", err)
	}

	result.Status = string(a.Status)
	return result, nil
}
