package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mkoschel/slotcal/internal/contract"
	"github.com/mkoschel/slotcal/internal/domain"
	"github.com/mkoschel/slotcal/internal/recurrence"
	"github.com/mkoschel/slotcal/internal/repository"
)

type slotService struct {
	companies repository.CompanyRepo
	slots     repository.SlotRepo
}

func NewSlotService(companies repository.CompanyRepo, slots repository.SlotRepo) SlotService {
	return &slotService{companies: companies, slots: slots}
}

func (s *slotService) AddRule(ctx context.Context, r *domain.SlotRule) error {
	if _, err := recurrence.BuildDescriptor(r.Spec()); err != nil {
		return fmt.Errorf("invalid slot rule: %w", err)
	}
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	return s.slots.CreateRule(ctx, r)
}

func (s *slotService) Rules(ctx context.Context, companyID string) ([]*domain.SlotRule, error) {
	return s.slots.ListRules(ctx, companyID)
}

func (s *slotService) ClearRules(ctx context.Context, companyID string) error {
	return s.slots.DeleteRules(ctx, companyID)
}

func (s *slotService) ClearAdhoc(ctx context.Context, companyID string) error {
	return s.slots.DeleteAdhoc(ctx, companyID)
}

func (s *slotService) AddAdhoc(ctx context.Context, companyID, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("slot text is required")
	}
	return s.slots.CreateAdhoc(ctx, &domain.AdhocSlot{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	})
}

func (s *slotService) Adhoc(ctx context.Context, companyID string) ([]*domain.AdhocSlot, error) {
	return s.slots.ListAdhoc(ctx, companyID)
}

// Upcoming expands the company's recurrence rules and merges in ad-hoc
// slot strings. Rules that fail validation or are outside their validity
// window are skipped with a warning rather than failing the listing.
func (s *slotService) Upcoming(ctx context.Context, req contract.UpcomingSlotsRequest) (*contract.UpcomingSlotsResponse, error) {
	now := time.Now().UTC()
	if req.Now != nil {
		now = *req.Now
	}
	perRule := req.PerRule
	if perRule <= 0 {
		perRule = 3
	}

	company, err := s.companies.GetByCode(ctx, req.CompanyCode)
	if err != nil {
		return nil, &contract.SlotsError{Code: contract.ErrCompanyNotFound, Message: req.CompanyCode}
	}

	rules, err := s.slots.ListRules(ctx, company.ID)
	if err != nil {
		return nil, fmt.Errorf("loading slot rules: %w", err)
	}
	adhoc, err := s.slots.ListAdhoc(ctx, company.ID)
	if err != nil {
		return nil, fmt.Errorf("loading ad-hoc slots: %w", err)
	}

	var warnings []string
	var descriptors []recurrence.Descriptor
	for _, r := range rules {
		if !ruleActive(r, now) {
			continue
		}
		d, err := recurrence.BuildDescriptor(r.Spec())
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("skipping rule %s: %v", r.ID, err))
			continue
		}
		descriptors = append(descriptors, d)
	}

	texts := make([]string, 0, len(adhoc))
	for _, a := range adhoc {
		texts = append(texts, a.Text)
	}

	if len(descriptors) == 0 && len(texts) == 0 {
		return nil, &contract.SlotsError{Code: contract.ErrNoSlotRules, Message: req.CompanyCode}
	}

	return &contract.UpcomingSlotsResponse{
		GeneratedAt: now,
		CompanyCode: company.Code,
		Slots:       recurrence.UpcomingSlots(descriptors, texts, perRule, now),
		Warnings:    warnings,
	}, nil
}

func ruleActive(r *domain.SlotRule, now time.Time) bool {
	if r.ValidFrom != nil && now.Before(*r.ValidFrom) {
		return false
	}
	if r.ValidUntil != nil && now.After(*r.ValidUntil) {
		return false
	}
	return true
}
