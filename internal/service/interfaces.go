package service

import (
	"context"

	"github.com/mkoschel/slotcal/internal/contract"
	"github.com/mkoschel/slotcal/internal/domain"
)

type CompanyService interface {
	Register(ctx context.Context, c *domain.Company) error
	GetByCode(ctx context.Context, code string) (*domain.Company, error)
	List(ctx context.Context) ([]*domain.Company, error)
	Update(ctx context.Context, c *domain.Company) error
	Delete(ctx context.Context, id string) error
	SetQuestions(ctx context.Context, companyID string, texts []string) error
	AddQuestion(ctx context.Context, companyID, text, criteria string) error
	UpdateQuestion(ctx context.Context, companyID string, position int, text, criteria string) error
	RemoveQuestion(ctx context.Context, companyID string, position int) error
	Questions(ctx context.Context, companyID string) ([]*domain.ScreeningQuestion, error)
}

type SlotService interface {
	AddRule(ctx context.Context, r *domain.SlotRule) error
	Rules(ctx context.Context, companyID string) ([]*domain.SlotRule, error)
	ClearRules(ctx context.Context, companyID string) error
	ClearAdhoc(ctx context.Context, companyID string) error
	AddAdhoc(ctx context.Context, companyID, text string) error
	Adhoc(ctx context.Context, companyID string) ([]*domain.AdhocSlot, error)
	Upcoming(ctx context.Context, req contract.UpcomingSlotsRequest) (*contract.UpcomingSlotsResponse, error)
}

type ScreeningService interface {
	Register(ctx context.Context, a *domain.Applicant) error
	Get(ctx context.Context, id string) (*domain.Applicant, error)
	ListByCompany(ctx context.Context, companyID string) ([]*domain.Applicant, error)
	Decide(ctx context.Context, req contract.DecisionRequest) (*contract.DecisionResult, error)
}
