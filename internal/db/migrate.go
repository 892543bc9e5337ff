package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS companies (
		id             TEXT PRIMARY KEY,
		code           TEXT NOT NULL UNIQUE,
		name           TEXT NOT NULL,
		contact_person TEXT NOT NULL DEFAULT '',
		contact_number TEXT NOT NULL DEFAULT '',
		contact_email  TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS questions (
		id          TEXT PRIMARY KEY,
		company_id  TEXT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		text        TEXT NOT NULL,
		criteria    TEXT NOT NULL DEFAULT '',
		order_index INTEGER NOT NULL DEFAULT 0,
		created_at  TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS slot_rules (
		id           TEXT PRIMARY KEY,
		company_id   TEXT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		kind         TEXT NOT NULL
		             CHECK(kind IN ('daily','weekly','monthly','yearly','seasonal')),
		weekday      TEXT NOT NULL DEFAULT '',
		positions    TEXT NOT NULL DEFAULT '',
		day_of_month INTEGER NOT NULL DEFAULT 0,
		months       TEXT NOT NULL DEFAULT '',
		start_time   TEXT NOT NULL,
		end_time     TEXT NOT NULL DEFAULT '',
		valid_from   TEXT,
		valid_until  TEXT,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS adhoc_slots (
		id         TEXT PRIMARY KEY,
		company_id TEXT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		text       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS applicants (
		id             TEXT PRIMARY KEY,
		company_id     TEXT NOT NULL REFERENCES companies(id) ON DELETE CASCADE,
		name           TEXT NOT NULL,
		status         TEXT NOT NULL DEFAULT 'pending'
		               CHECK(status IN ('pending','passed','failed')),
		responses      TEXT NOT NULL DEFAULT '{}',
		selected_slot  TEXT NOT NULL DEFAULT '',
		scheduled_date TEXT NOT NULL DEFAULT '',
		scheduled_time TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_questions_company ON questions(company_id, order_index)`,
	`CREATE INDEX IF NOT EXISTS idx_slot_rules_company ON slot_rules(company_id)`,
	`CREATE INDEX IF NOT EXISTS idx_adhoc_slots_company ON adhoc_slots(company_id)`,
	`CREATE INDEX IF NOT EXISTS idx_applicants_company ON applicants(company_id, status)`,
}
