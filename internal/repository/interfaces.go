package repository

import (
	"context"

	"github.com/mkoschel/slotcal/internal/domain"
)

type CompanyRepo interface {
	Create(ctx context.Context, c *domain.Company) error
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	GetByCode(ctx context.Context, code string) (*domain.Company, error)
	List(ctx context.Context) ([]*domain.Company, error)
	Update(ctx context.Context, c *domain.Company) error
	Delete(ctx context.Context, id string) error
}

type QuestionRepo interface {
	Create(ctx context.Context, q *domain.ScreeningQuestion) error
	ListByCompany(ctx context.Context, companyID string) ([]*domain.ScreeningQuestion, error)
	Update(ctx context.Context, q *domain.ScreeningQuestion) error
	Delete(ctx context.Context, id string) error
	ReplaceAll(ctx context.Context, companyID string, questions []*domain.ScreeningQuestion) error
}

type SlotRepo interface {
	CreateRule(ctx context.Context, r *domain.SlotRule) error
	ListRules(ctx context.Context, companyID string) ([]*domain.SlotRule, error)
	ReplaceRules(ctx context.Context, companyID string, rules []*domain.SlotRule) error
	DeleteRules(ctx context.Context, companyID string) error
	CreateAdhoc(ctx context.Context, s *domain.AdhocSlot) error
	ListAdhoc(ctx context.Context, companyID string) ([]*domain.AdhocSlot, error)
	DeleteAdhoc(ctx context.Context, companyID string) error
}

type ApplicantRepo interface {
	Create(ctx context.Context, a *domain.Applicant) error
	GetByID(ctx context.Context, id string) (*domain.Applicant, error)
	ListByCompany(ctx context.Context, companyID string) ([]*domain.Applicant, error)
	Update(ctx context.Context, a *domain.Applicant) error
}
