package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mkoschel/slotcal/internal/domain"
)

// SQLiteQuestionRepo implements QuestionRepo using a SQLite database.
type SQLiteQuestionRepo struct {
	db *sql.DB
}

// NewSQLiteQuestionRepo creates a new SQLiteQuestionRepo.
func NewSQLiteQuestionRepo(db *sql.DB) *SQLiteQuestionRepo {
	return &SQLiteQuestionRepo{db: db}
}

const questionColumns = `id, company_id, text, criteria, order_index, created_at, updated_at`

func (r *SQLiteQuestionRepo) Create(ctx context.Context, q *domain.ScreeningQuestion) error {
	query := `INSERT INTO questions (` + questionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		q.ID,
		q.CompanyID,
		q.Text,
		q.Criteria,
		q.OrderIndex,
		q.CreatedAt.Format(time.RFC3339),
		q.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting question: %w", err)
	}
	return nil
}

func (r *SQLiteQuestionRepo) ListByCompany(ctx context.Context, companyID string) ([]*domain.ScreeningQuestion, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE company_id = ? ORDER BY order_index`
	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("listing questions: %w", err)
	}
	defer rows.Close()

	var questions []*domain.ScreeningQuestion
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating questions: %w", err)
	}
	return questions, nil
}

func (r *SQLiteQuestionRepo) Update(ctx context.Context, q *domain.ScreeningQuestion) error {
	query := `UPDATE questions SET text = ?, criteria = ?, order_index = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		q.Text,
		q.Criteria,
		q.OrderIndex,
		q.UpdatedAt.Format(time.RFC3339),
		q.ID,
	)
	if err != nil {
		return fmt.Errorf("updating question: %w", err)
	}
	return nil
}

func (r *SQLiteQuestionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting question: %w", err)
	}
	return nil
}

// ReplaceAll swaps a company's question set atomically.
func (r *SQLiteQuestionRepo) ReplaceAll(ctx context.Context, companyID string, questions []*domain.ScreeningQuestion) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions WHERE company_id = ?`, companyID); err != nil {
		return fmt.Errorf("clearing questions: %w", err)
	}
	for _, q := range questions {
		query := `INSERT INTO questions (` + questionColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
		_, err := tx.ExecContext(ctx, query,
			q.ID,
			q.CompanyID,
			q.Text,
			q.Criteria,
			q.OrderIndex,
			q.CreatedAt.Format(time.RFC3339),
			q.UpdatedAt.Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("inserting question: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing questions: %w", err)
	}
	committed = true
	return nil
}

func scanQuestion(rows *sql.Rows) (*domain.ScreeningQuestion, error) {
	var q domain.ScreeningQuestion
	var createdAt, updatedAt string
	err := rows.Scan(
		&q.ID,
		&q.CompanyID,
		&q.Text,
		&q.Criteria,
		&q.OrderIndex,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning question: %w", err)
	}
	q.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	q.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &q, nil
}
