package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/mkoschel/slotcal/internal/domain"
)

// SQLiteSlotRepo implements SlotRepo using a SQLite database. It stores both
// structured recurrence rules and ad-hoc slot strings.
type SQLiteSlotRepo struct {
	db *sql.DB
}

// NewSQLiteSlotRepo creates a new SQLiteSlotRepo.
func NewSQLiteSlotRepo(db *sql.DB) *SQLiteSlotRepo {
	return &SQLiteSlotRepo{db: db}
}

const dateLayout = "2006-01-02"

const slotRuleColumns = `id, company_id, kind, weekday, positions, day_of_month, months, start_time, end_time, valid_from, valid_until, created_at, updated_at`

func (r *SQLiteSlotRepo) CreateRule(ctx context.Context, rule *domain.SlotRule) error {
	return insertRule(ctx, r.db, rule)
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertRule(ctx context.Context, db execer, rule *domain.SlotRule) error {
	query := `INSERT INTO slot_rules (` + slotRuleColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := db.ExecContext(ctx, query,
		rule.ID,
		rule.CompanyID,
		rule.Kind,
		rule.Weekday,
		joinList(rule.Positions),
		rule.DayOfMonth,
		joinList(rule.Months),
		rule.StartTime,
		rule.EndTime,
		nullableTimeToString(rule.ValidFrom, dateLayout),
		nullableTimeToString(rule.ValidUntil, dateLayout),
		rule.CreatedAt.Format(time.RFC3339),
		rule.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting slot rule: %w", err)
	}
	return nil
}

func (r *SQLiteSlotRepo) ListRules(ctx context.Context, companyID string) ([]*domain.SlotRule, error) {
	query := `SELECT ` + slotRuleColumns + ` FROM slot_rules WHERE company_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("listing slot rules: %w", err)
	}
	defer rows.Close()

	var rules []*domain.SlotRule
	for rows.Next() {
		rule, err := scanSlotRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating slot rules: %w", err)
	}
	return rules, nil
}

// ReplaceRules swaps a company's recurrence rules atomically.
func (r *SQLiteSlotRepo) ReplaceRules(ctx context.Context, companyID string, rules []*domain.SlotRule) error {
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

	if _, err := tx.ExecContext(ctx, `DELETE FROM slot_rules WHERE company_id = ?`, companyID); err != nil {
		return fmt.Errorf("clearing slot rules: %w", err)
	}
	for _, rule := range rules {
		if err := insertRule(ctx, tx, rule); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing slot rules: %w", err)
	}
	committed = true
	return nil
}

func (r *SQLiteSlotRepo) DeleteRules(ctx context.Context, companyID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM slot_rules WHERE company_id = ?`, companyID); err != nil {
		return fmt.Errorf("deleting slot rules: %w", err)
	}
	return nil
}

func (r *SQLiteSlotRepo) CreateAdhoc(ctx context.Context, s *domain.AdhocSlot) error {
	query := `INSERT INTO adhoc_slots (id, company_id, text, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, s.ID, s.CompanyID, s.Text, s.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("inserting adhoc slot: %w", err)
	}
	return nil
}

func (r *SQLiteSlotRepo) ListAdhoc(ctx context.Context, companyID string) ([]*domain.AdhocSlot, error) {
	query := `SELECT id, company_id, text, created_at FROM adhoc_slots WHERE company_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("listing adhoc slots: %w", err)
	}
	defer rows.Close()

	var slots []*domain.AdhocSlot
	for rows.Next() {
		var s domain.AdhocSlot
		var createdAt string
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Text, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning adhoc slot: %w", err)
		}
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		slots = append(slots, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating adhoc slots: %w", err)
	}
	return slots, nil
}

func (r *SQLiteSlotRepo) DeleteAdhoc(ctx context.Context, companyID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM adhoc_slots WHERE company_id = ?`, companyID); err != nil {
		return fmt.Errorf("deleting adhoc slots: %w", err)
	}
	return nil
}

func scanSlotRule(rows *sql.Rows) (*domain.SlotRule, error) {
	var rule domain.SlotRule
	var positions, months string
	var validFrom, validUntil sql.NullString
	var createdAt, updatedAt string
	err := rows.Scan(
		&rule.ID,
		&rule.CompanyID,
		&rule.Kind,
		&rule.Weekday,
		&positions,
		&rule.DayOfMonth,
		&months,
		&rule.StartTime,
		&rule.EndTime,
		&validFrom,
		&validUntil,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning slot rule: %w", err)
	}
	rule.Positions = splitList(positions)
	rule.Months = splitList(months)
	rule.ValidFrom = parseNullableTime(validFrom, dateLayout)
	rule.ValidUntil = parseNullableTime(validUntil, dateLayout)
	rule.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	rule.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)
	return &rule, nil
}
