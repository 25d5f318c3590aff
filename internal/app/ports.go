package app

import (
	"context"

	"github.com/alexanderramin/lectio/internal/importer"
)

type ReadingUseCase interface {
	ReadingFor(ctx context.Context, req ReadingRequest) (*ReadingResponse, error)
	PlanView(ctx context.Context, year int) (*PlanResponse, error)
}

type ProgressUseCase interface {
	MarkComplete(ctx context.Context, req MarkCompleteRequest) (*ProgressResult, error)
	UndoCompletion(ctx context.Context, req UndoRequest) (*ProgressResult, error)
	Progress(ctx context.Context, date string) (*ProgressView, error)
	Range(ctx context.Context, req RangeRequest) ([]DayProgress, error)
}

type StatsUseCase interface {
	Current(ctx context.Context, req StatsRequest) (*StatsResponse, error)
}

type TransferUseCase interface {
	ImportFile(ctx context.Context, path string, overwrite bool) (*ImportResult, error)
	// ImportDocuments stores docs in one transaction. Dates that already
	// have a record are skipped unless overwrite is set.
	ImportDocuments(ctx context.Context, docs []importer.ProgressDocument, overwrite bool) (*ImportResult, error)
	Export(ctx context.Context, year int) ([]importer.ProgressDocument, error)
}
