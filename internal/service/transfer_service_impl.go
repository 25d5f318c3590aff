package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/alexanderramin/lectio/internal/app"
	"github.com/alexanderramin/lectio/internal/db"
	"github.com/alexanderramin/lectio/internal/domain"
	"github.com/alexanderramin/lectio/internal/importer"
	"github.com/alexanderramin/lectio/internal/repository"
)

type transferService struct {
	planner  *Planner
	progress repository.ProgressRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
	now      func() time.Time
}

func NewTransferService(
	planner *Planner,
	progress repository.ProgressRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) TransferService {
	return &transferService{
		planner:  planner,
		progress: progress,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
		now:      time.Now,
	}
}

func (s *transferService) ImportFile(ctx context.Context, path string, overwrite bool) (*app.ImportResult, error) {
	docs, err := importer.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportDocuments(ctx, docs, overwrite)
}

func (s *transferService) ImportDocuments(ctx context.Context, docs []importer.ProgressDocument, overwrite bool) (res *app.ImportResult, err error) {
	fields := map[string]any{"documents": len(docs), "overwrite": overwrite}
	defer observe(ctx, s.observer, "import-progress", time.Now(), fields, &err)

	if errs := importer.Validate(docs, s.planner.Index); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	now := s.now().UTC()
	recs, err := importer.Convert(docs, now)
	if err != nil {
		return nil, err
	}

	years := make([]int, 0, len(recs))
	for _, r := range recs {
		if !slices.Contains(years, r.Year) {
			years = append(years, r.Year)
		}
	}
	slices.Sort(years)

	defer s.planner.locks.lockAll(years)()

	res = &app.ImportResult{Years: years}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx)
		txHistory := repository.NewSQLiteHistoryRepo(tx)

		for _, rec := range recs {
			existing, err := txProgress.GetByDate(ctx, rec.Date)
			switch {
			case err == nil && !overwrite:
				res.Skipped++
				continue
			case err == nil:
				rec.ID = existing.ID
				res.Replaced++
			case errors.Is(err, repository.ErrNotFound):
				res.Imported++
			default:
				return err
			}
			if err := txProgress.Upsert(ctx, rec); err != nil {
				return fmt.Errorf("storing %s: %w", rec.Date, err)
			}
		}

		for _, y := range years {
			if _, err := recomputeHistory(ctx, txProgress, txHistory, y, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["imported"] = res.Imported
	fields["replaced"] = res.Replaced
	fields["skipped"] = res.Skipped
	return res, nil
}

func (s *transferService) Export(ctx context.Context, year int) (docs []importer.ProgressDocument, err error) {
	defer observe(ctx, s.observer, "export-progress", time.Now(), map[string]any{"year": year}, &err)

	if year < 1 || year > 9999 {
		return nil, &app.ValidationError{Field: "year", Value: fmt.Sprint(year), Message: "out of range"}
	}
	start, end := domain.YearBounds(year)
	recs, err := s.progress.ListByDateRange(ctx, domain.FormatDate(start), domain.FormatDate(end))
	if err != nil {
		return nil, err
	}
	return importer.Export(recs), nil
}

func formatValidationErrors(errs []error) error {
	msg := fmt.Sprintf("import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		msg += "\n  - " + e.Error()
	}
	return &app.ValidationError{Field: "documents", Value: fmt.Sprintf("%d error(s)", len(errs)), Message: msg}
}
