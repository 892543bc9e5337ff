package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mkoschel/slotcal/internal/domain"
)

// SQLiteApplicantRepo implements ApplicantRepo using a SQLite database.
// Applicant responses are stored as a JSON document, matching the
// unstructured shape the screening conversation produces.
type SQLiteApplicantRepo struct {
	db *sql.DB
}

// NewSQLiteApplicantRepo creates a new SQLiteApplicantRepo.
func NewSQLiteApplicantRepo(db *sql.DB) *SQLiteApplicantRepo {
	return &SQLiteApplicantRepo{db: db}
}

const applicantColumns = `id, company_id, name, status, responses, selected_slot, scheduled_date, scheduled_time, created_at, updated_at`

func (r *SQLiteApplicantRepo) Create(ctx context.Context, a *domain.Applicant) error {
	responses, err := marshalResponses(a.Responses)
	if err != nil {
		return err
	}
	query := `INSERT INTO applicants (` + applicantColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		a.ID,
		a.CompanyID,
		a.Name,
		string(a.Status),
		responses,
		a.SelectedSlot,
		a.ScheduledDate,
		a.ScheduledTime,
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting applicant: %w", err)
	}
	return nil
}

func (r *SQLiteApplicantRepo) GetByID(ctx context.Context, id string) (*domain.Applicant, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+applicantColumns+` FROM applicants WHERE id = ?`, id)
	return scanApplicant(row)
}

func (r *SQLiteApplicantRepo) ListByCompany(ctx context.Context, companyID string) ([]*domain.Applicant, error) {
	query := `SELECT ` + applicantColumns + ` FROM applicants WHERE company_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("listing applicants: %w", err)
	}
	defer rows.Close()

	var applicants []*domain.Applicant
	for rows.Next() {
		a, err := scanApplicant(rows)
		if err != nil {
			return nil, err
		}
		applicants = append(applicants, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating applicants: %w", err)
	}
	return applicants, nil
}

func (r *SQLiteApplicantRepo) Update(ctx context.Context, a *domain.Applicant) error {
	responses, err := marshalResponses(a.Responses)
	if err != nil {
		return err
	}
	query := `UPDATE applicants SET name = ?, status = ?, responses = ?, selected_slot = ?, scheduled_date = ?, scheduled_time = ?, updated_at = ?
		WHERE id = ?`
	_, err = r.db.ExecContext(ctx, query,
		a.Name,
		string(a.Status),
		responses,
		a.SelectedSlot,
		a.ScheduledDate,
		a.ScheduledTime,
		a.UpdatedAt.Format(time.RFC3339),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating applicant: %w", err)
	}
	return nil
}

func marshalResponses(responses map[string]any) (string, error) {
	if responses == nil {
		return "{}", nil
	}
	data, err := json.Marshal(responses)
	if err != nil {
		return "", fmt.Errorf("encoding responses: %w", err)
	}
	return string(data), nil
}

func scanApplicant(row rowScanner) (*domain.Applicant, error) {
	var a domain.Applicant
	var status, responses, createdAt, updatedAt string
	err := row.Scan(
		&a.ID,
		&a.CompanyID,
		&a.Name,
		&status,
		&responses,
		&a.SelectedSlot,
		&a.ScheduledDate,
		&a.ScheduledTime,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("applicant not found")
	}
	if err != nil {
		return nil, fmt.Errorf("scanning applicant: %w", err)
	}
	a.Status = domain.ApplicantStatus(status)
	if err := json.Unmarshal([]byte(responses), &a.Responses); err != nil {
		return nil, fmt.Errorf("decoding responses: %w", err)
	}
	a.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	a.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &a, nil
}
