package service

import (
	"context"

	"github.com/alexanderramin/lectio/internal/app"
	"github.com/alexanderramin/lectio/internal/domain"
)

type ReadingService interface {
	app.ReadingUseCase
}

type ProgressService interface {
	app.ProgressUseCase
	// GetOrCreate returns the record for date, persisting a new one with
	// assigned when none exists. Repeated calls return the same record.
	GetOrCreate(ctx context.Context, date string, assigned []domain.Chapter) (*domain.ProgressRecord, error)
	RecomputeHistory(ctx context.Context, year int) (*domain.YearHistory, error)
}

type StatsService interface {
	app.StatsUseCase
}

type TransferService interface {
	app.TransferUseCase
}
