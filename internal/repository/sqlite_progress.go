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

// SQLiteProgressRepo implements ProgressRepo using a SQLite database.
type SQLiteProgressRepo struct {
	db db.DBTX
}

// NewSQLiteProgressRepo creates a new SQLiteProgressRepo.
func NewSQLiteProgressRepo(conn db.DBTX) *SQLiteProgressRepo {
	return &SQLiteProgressRepo{db: conn}
}

const progressColumns = `date, id, year, chapters_assigned, completed_chapters,
		is_fully_complete, completed_at, created_at, updated_at`

func (r *SQLiteProgressRepo) GetByDate(ctx context.Context, date string) (*domain.ProgressRecord, error) {
	query := `SELECT ` + progressColumns + ` FROM reading_progress WHERE date = ?`
	row := r.db.QueryRowContext(ctx, query, date)
	return r.scanProgress(row)
}

func (r *SQLiteProgressRepo) Upsert(ctx context.Context, p *domain.ProgressRecord) error {
	assigned, err := encodeJSON(p.Assigned)
	if err != nil {
		return err
	}
	completed, err := encodeJSON(p.Completed)
	if err != nil {
		return err
	}

	query := `INSERT INTO reading_progress (date, id, year, chapters_assigned, completed_chapters,
		completed_count, is_fully_complete, completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			year = excluded.year,
			chapters_assigned = excluded.chapters_assigned,
			completed_chapters = excluded.completed_chapters,
			completed_count = excluded.completed_count,
			is_fully_complete = excluded.is_fully_complete,
			completed_at = excluded.completed_at,
			updated_at = excluded.updated_at`
	_, err = r.db.ExecContext(ctx, query,
		p.Date,
		p.ID,
		p.Year,
		assigned,
		completed,
		len(p.Completed),
		boolToInt(p.FullyComplete),
		nullableTimeToString(p.CompletedAt, time.RFC3339Nano),
		p.CreatedAt.UTC().Format(time.RFC3339Nano),
		p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upserting reading progress %s: %w", p.Date, err)
	}
	return nil
}

func (r *SQLiteProgressRepo) SumCompletedBefore(ctx context.Context, year int, date string) (int, error) {
	query := `SELECT COALESCE(SUM(completed_count), 0) FROM reading_progress WHERE year = ? AND date < ?`
	var total int
	if err := r.db.QueryRowContext(ctx, query, year, date).Scan(&total); err != nil {
		return 0, fmt.Errorf("summing completed chapters before %s: %w", date, err)
	}
	return total, nil
}

func (r *SQLiteProgressRepo) ListByYearBefore(ctx context.Context, year int, date string) ([]*domain.ProgressRecord, error) {
	query := `SELECT ` + progressColumns + ` FROM reading_progress
		WHERE year = ? AND date < ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, year, date)
	if err != nil {
		return nil, fmt.Errorf("listing progress before %s: %w", date, err)
	}
	defer rows.Close()
	return r.scanProgresses(rows)
}

func (r *SQLiteProgressRepo) ListByDateRange(ctx context.Context, start, end string) ([]*domain.ProgressRecord, error) {
	query := `SELECT ` + progressColumns + ` FROM reading_progress
		WHERE date >= ? AND date <= ? ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing progress range %s..%s: %w", start, end, err)
	}
	defer rows.Close()
	return r.scanProgresses(rows)
}

func (r *SQLiteProgressRepo) ListCompleteByYear(ctx context.Context, year int) ([]*domain.ProgressRecord, error) {
	query := `SELECT ` + progressColumns + ` FROM reading_progress
		WHERE year = ? AND is_fully_complete = 1 ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("listing complete progress for %d: %w", year, err)
	}
	defer rows.Close()
	return r.scanProgresses(rows)
}

type progressRow struct {
	assigned, completed  string
	fullyComplete        int
	completedAt          sql.NullString
	createdAt, updatedAt string
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProgressRow(s scanner, p *domain.ProgressRecord, raw *progressRow) error {
	return s.Scan(
		&p.Date, &p.ID, &p.Year, &raw.assigned, &raw.completed,
		&raw.fullyComplete, &raw.completedAt, &raw.createdAt, &raw.updatedAt,
	)
}

// scanProgress scans a single record from a *sql.Row.
func (r *SQLiteProgressRepo) scanProgress(row *sql.Row) (*domain.ProgressRecord, error) {
	var p domain.ProgressRecord
	var raw progressRow
	if err := scanProgressRow(row, &p, &raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("reading progress: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning reading progress: %w", err)
	}
	return r.populateProgress(&p, raw)
}

// scanProgresses scans multiple records from *sql.Rows.
func (r *SQLiteProgressRepo) scanProgresses(rows *sql.Rows) ([]*domain.ProgressRecord, error) {
	var out []*domain.ProgressRecord
	for rows.Next() {
		var p domain.ProgressRecord
		var raw progressRow
		if err := scanProgressRow(rows, &p, &raw); err != nil {
			return nil, fmt.Errorf("scanning reading progress row: %w", err)
		}
		rec, err := r.populateProgress(&p, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating reading progress: %w", err)
	}
	return out, nil
}

// populateProgress fills in decoded fields after scanning raw columns.
func (r *SQLiteProgressRepo) populateProgress(p *domain.ProgressRecord, raw progressRow) (*domain.ProgressRecord, error) {
	var err error
	if p.Assigned, err = decodeJSON[domain.Chapter](raw.assigned); err != nil {
		return nil, fmt.Errorf("chapters_assigned for %s: %w", p.Date, err)
	}
	if p.Completed, err = decodeJSON[domain.CompletedChapter](raw.completed); err != nil {
		return nil, fmt.Errorf("completed_chapters for %s: %w", p.Date, err)
	}
	p.FullyComplete = intToBool(raw.fullyComplete)
	p.CompletedAt = parseNullableTime(raw.completedAt, time.RFC3339Nano)
	if p.CreatedAt, err = time.Parse(time.RFC3339Nano, raw.createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339Nano, raw.updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return p, nil
}
