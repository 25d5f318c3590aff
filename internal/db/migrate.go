package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS reading_progress (
		date               TEXT PRIMARY KEY,
		id                 TEXT NOT NULL UNIQUE,
		year               INTEGER NOT NULL,
		chapters_assigned  TEXT NOT NULL DEFAULT '[]',
		completed_chapters TEXT NOT NULL DEFAULT '[]',
		completed_count    INTEGER NOT NULL DEFAULT 0,
		is_fully_complete  INTEGER NOT NULL DEFAULT 0 CHECK(is_fully_complete IN (0, 1)),
		completed_at       TEXT,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_reading_progress_year ON reading_progress(year)`,
	`CREATE INDEX IF NOT EXISTS idx_reading_progress_year_complete ON reading_progress(year, is_fully_complete)`,

	`CREATE TABLE IF NOT EXISTS reading_history (
		year                INTEGER PRIMARY KEY,
		total_days_read     INTEGER NOT NULL DEFAULT 0,
		current_streak      INTEGER NOT NULL DEFAULT 0,
		longest_streak      INTEGER NOT NULL DEFAULT 0,
		total_chapters_read INTEGER NOT NULL DEFAULT 0,
		last_read_date      TEXT,
		updated_at          TEXT NOT NULL
	)`,
}
