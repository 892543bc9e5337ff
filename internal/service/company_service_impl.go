package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mkoschel/slotcal/internal/domain"
	"github.com/mkoschel/slotcal/internal/repository"
)

type companyService struct {
	companies repository.CompanyRepo
	questions repository.QuestionRepo
}

func NewCompanyService(companies repository.CompanyRepo, questions repository.QuestionRepo) CompanyService {
	return &companyService{companies: companies, questions: questions}
}

func (s *companyService) Register(ctx context.Context, c *domain.Company) error {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	if c.Code == "" {
		return fmt.Errorf("company code is required")
	}
	if c.Name == "" {
		return fmt.Errorf("company name is required")
	}
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	now := time.Now().UTC()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now
	return s.companies.Create(ctx, c)
}

func (s *companyService) GetByCode(ctx context.Context, code string) (*domain.Company, error) {
	return s.companies.GetByCode(ctx, strings.TrimSpace(code))
}

func (s *companyService) List(ctx context.Context) ([]*domain.Company, error) {
	return s.companies.List(ctx)
}

func (s *companyService) Update(ctx context.Context, c *domain.Company) error {
	c.UpdatedAt = time.Now().UTC()
	return s.companies.Update(ctx, c)
}

func (s *companyService) Delete(ctx context.Context, id string) error {
	return s.companies.Delete(ctx, id)
}

// SetQuestions replaces the company's screening script with the given
// question texts, preserving their order.
func (s *companyService) SetQuestions(ctx context.Context, companyID string, texts []string) error {
	if _, err := s.companies.GetByID(ctx, companyID); err != nil {
		return fmt.Errorf("loading company: %w", err)
	}
	now := time.Now().UTC()
	questions := make([]*domain.ScreeningQuestion, 0, len(texts))
	for i, text := range texts {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		questions = append(questions, &domain.ScreeningQuestion{
			ID:         uuid.New().String(),
			CompanyID:  companyID,
			Text:       text,
			OrderIndex: i,
			CreatedAt:  now,
			UpdatedAt:  now,
		})
	}
	return s.questions.ReplaceAll(ctx, companyID, questions)
}

// AddQuestion appends a question to the end of the company's script.
func (s *companyService) AddQuestion(ctx context.Context, companyID, text, criteria string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("question text is required")
	}
	existing, err := s.questions.ListByCompany(ctx, companyID)
	if err != nil {
		return fmt.Errorf("loading questions: %w", err)
	}
	now := time.Now().UTC()
	return s.questions.Create(ctx, &domain.ScreeningQuestion{
		ID:         uuid.New().String(),
		CompanyID:  companyID,
		Text:       text,
		Criteria:   criteria,
		OrderIndex: len(existing),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

// UpdateQuestion rewrites the question at the given 1-based position.
// An empty criteria clears any existing pass criteria.
func (s *companyService) UpdateQuestion(ctx context.Context, companyID string, position int, text, criteria string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("question text is required")
	}
	existing, err := s.questions.ListByCompany(ctx, companyID)
	if err != nil {
		return fmt.Errorf("loading questions: %w", err)
	}
	if position < 1 || position > len(existing) {
		return fmt.Errorf("question %d does not exist (have %d)", position, len(existing))
	}

	q := existing[position-1]
	q.Text = text
	q.Criteria = criteria
	q.UpdatedAt = time.Now().UTC()
	return s.questions.Update(ctx, q)
}

// RemoveQuestion deletes the question at the given 1-based position and
// closes the gap in the remaining order.
func (s *companyService) RemoveQuestion(ctx context.Context, companyID string, position int) error {
	existing, err := s.questions.ListByCompany(ctx, companyID)
	if err != nil {
		return fmt.Errorf("loading questions: %w", err)
	}
	if position < 1 || position > len(existing) {
		return fmt.Errorf("question %d does not exist (have %d)", position, len(existing))
	}

	if err := s.questions.Delete(ctx, existing[position-1].ID); err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, q := range existing[position:] {
		q.OrderIndex--
		q.UpdatedAt = now
		if err := s.questions.Update(ctx, q); err != nil {
			return fmt.Errorf("reordering questions: %w", err)
		}
	}
	return nil
}

func (s *companyService) Questions(ctx context.Context, companyID string) ([]*domain.ScreeningQuestion, error) {
	return s.questions.ListByCompany(ctx, companyID)
}
