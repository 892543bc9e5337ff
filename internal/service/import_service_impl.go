package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mkoschel/slotcal/internal/domain"
	"github.com/mkoschel/slotcal/internal/importer"
	"github.com/mkoschel/slotcal/internal/repository"
)

// ImportResult holds the outcome of a company import.
type ImportResult struct {
	Company       *domain.Company
	QuestionCount int
	RuleCount     int
	AdhocCount    int
}

type ImportService interface {
	ImportCompany(ctx context.Context, filePath string) (*ImportResult, error)
	ImportCompanyFromSchema(ctx context.Context, schema *importer.CompanySchema) (*ImportResult, error)
}

type importService struct {
	companies repository.CompanyRepo
	questions repository.QuestionRepo
	slots     repository.SlotRepo
}

func NewImportService(companies repository.CompanyRepo, questions repository.QuestionRepo, slots repository.SlotRepo) ImportService {
	return &importService{companies: companies, questions: questions, slots: slots}
}

func (s *importService) ImportCompany(ctx context.Context, filePath string) (*ImportResult, error) {
	schema, err := importer.LoadCompanySchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportCompanyFromSchema(ctx, schema)
}

func (s *importService) ImportCompanyFromSchema(ctx context.Context, schema *importer.CompanySchema) (*ImportResult, error) {
	if errs := importer.ValidateCompanySchema(schema); len(errs) > 0 {
		msgs := make([]string, 0, len(errs))
		for _, e := range errs {
			msgs = append(msgs, e.Error())
		}
		return nil, errors.New("invalid import file:\n  " + strings.Join(msgs, "\n  "))
	}

	result := importer.ConvertCompanySchema(schema, time.Now().UTC())

	if existing, err := s.companies.GetByCode(ctx, result.Company.Code); err == nil && existing != nil {
		return nil, fmt.Errorf("company %s already exists", result.Company.Code)
	}

	if err := s.companies.Create(ctx, result.Company); err != nil {
		return nil, fmt.Errorf("creating company: %w", err)
	}
	if err := s.questions.ReplaceAll(ctx, result.Company.ID, result.Questions); err != nil {
		return nil, fmt.Errorf("importing questions: %w", err)
	}
	if err := s.slots.ReplaceRules(ctx, result.Company.ID, result.Rules); err != nil {
		return nil, fmt.Errorf("importing slot rules: %w", err)
	}
	for _, a := range result.Adhoc {
		if err := s.slots.CreateAdhoc(ctx, a); err != nil {
			return nil, fmt.Errorf("importing ad-hoc slot: %w", err)
		}
	}

	return &ImportResult{
		Company:       result.Company,
		QuestionCount: len(result.Questions),
		RuleCount:     len(result.Rules),
		AdhocCount:    len(result.Adhoc),
	}, nil
}
