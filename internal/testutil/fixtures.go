package testutil

import (
	"time"

	"github.com/alexanderramin/lectio/internal/domain"
	"github.com/google/uuid"
)

// ProgressOption customizes a test progress record.
type ProgressOption func(*domain.ProgressRecord)

// WithAssigned replaces the assigned chapters.
func WithAssigned(chapters ...domain.Chapter) ProgressOption {
	return func(p *domain.ProgressRecord) {
		p.Assigned = chapters
	}
}

// WithCompleted marks the given chapters read at the record's CreatedAt.
func WithCompleted(chapters ...domain.Chapter) ProgressOption {
	return func(p *domain.ProgressRecord) {
		p.MarkChapters(chapters, p.CreatedAt)
	}
}

// WithAllCompleted marks every assigned chapter read.
func WithAllCompleted() ProgressOption {
	return func(p *domain.ProgressRecord) {
		p.MarkChapters(p.Assigned, p.CreatedAt)
	}
}

// Ch is shorthand for a domain.Chapter literal.
func Ch(book string, chapter int) domain.Chapter {
	return domain.Chapter{Book: book, Chapter: chapter}
}

// NewTestProgress builds a record for date ("YYYY-MM-DD") assigned Genesis 1-3
// unless overridden. Options run in order, so put WithAssigned before any
// completion option.
func NewTestProgress(date string, opts ...ProgressOption) *domain.ProgressRecord {
	d, err := domain.ParseDate(date)
	if err != nil {
		panic(err)
	}
	now := d.Add(20 * time.Hour)
	p := domain.NewProgressRecord(uuid.New().String(), date, d.Year(),
		[]domain.Chapter{Ch("Genesis", 1), Ch("Genesis", 2), Ch("Genesis", 3)}, now)
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewTestHistory builds a history row for year with the given streak values.
func NewTestHistory(year, daysRead, current, longest int) *domain.YearHistory {
	h := domain.NewYearHistory(year)
	h.TotalDaysRead = daysRead
	h.CurrentStreak = current
	h.LongestStreak = longest
	h.UpdatedAt = time.Date(year, 6, 1, 12, 0, 0, 0, time.UTC)
	return h
}
