package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/lectio/internal/domain"
)

// ErrNotFound is returned (wrapped) when a keyed lookup matches no row.
var ErrNotFound = errors.New("not found")

// ProgressRepo persists one ProgressRecord per calendar date.
type ProgressRepo interface {
	GetByDate(ctx context.Context, date string) (*domain.ProgressRecord, error)
	// Upsert replaces the full record stored under p.Date.
	Upsert(ctx context.Context, p *domain.ProgressRecord) error
	// SumCompletedBefore counts completed chapters across the year's
	// records dated strictly before date.
	SumCompletedBefore(ctx context.Context, year int, date string) (int, error)
	ListByYearBefore(ctx context.Context, year int, date string) ([]*domain.ProgressRecord, error)
	ListByDateRange(ctx context.Context, start, end string) ([]*domain.ProgressRecord, error)
	ListCompleteByYear(ctx context.Context, year int) ([]*domain.ProgressRecord, error)
}

// HistoryRepo persists one YearHistory per year.
type HistoryRepo interface {
	GetByYear(ctx context.Context, year int) (*domain.YearHistory, error)
	// Upsert replaces the full aggregate stored under h.Year.
	Upsert(ctx context.Context, h *domain.YearHistory) error
}
