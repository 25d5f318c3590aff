package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/lectio/internal/db"
	"github.com/alexanderramin/lectio/internal/domain"
)

// SQLiteHistoryRepo implements HistoryRepo using a SQLite database.
type SQLiteHistoryRepo struct {
	db db.DBTX
}

// NewSQLiteHistoryRepo creates a new SQLiteHistoryRepo.
func NewSQLiteHistoryRepo(conn db.DBTX) *SQLiteHistoryRepo {
	return &SQLiteHistoryRepo{db: conn}
}

func (r *SQLiteHistoryRepo) GetByYear(ctx context.Context, year int) (*domain.YearHistory, error) {
	query := `SELECT year, total_days_read, current_streak, longest_streak,
		total_chapters_read, last_read_date, updated_at
		FROM reading_history WHERE year = ?`
	row := r.db.QueryRowContext(ctx, query, year)

	var h domain.YearHistory
	var lastRead sql.NullString
	var updatedAt string
	err := row.Scan(
		&h.Year,
		&h.TotalDaysRead,
		&h.CurrentStreak,
		&h.LongestStreak,
		&h.TotalChaptersRead,
		&lastRead,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reading history %d: %w", year, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning reading history: %w", err)
	}
	h.LastReadDate = stringPtr(lastRead)
	if h.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &h, nil
}

func (r *SQLiteHistoryRepo) Upsert(ctx context.Context, h *domain.YearHistory) error {
	query := `INSERT OR REPLACE INTO reading_history (year, total_days_read, current_streak,
		longest_streak, total_chapters_read, last_read_date, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		h.Year,
		h.TotalDaysRead,
		h.CurrentStreak,
		h.LongestStreak,
		h.TotalChaptersRead,
		nullableString(h.LastReadDate),
		h.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upserting reading history %d: %w", h.Year, err)
	}
	return nil
}
