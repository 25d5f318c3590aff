package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/lectio/internal/app"
	"github.com/alexanderramin/lectio/internal/db"
	"github.com/alexanderramin/lectio/internal/domain"
	"github.com/alexanderramin/lectio/internal/repository"
	"github.com/alexanderramin/lectio/internal/scheduler"
	"github.com/google/uuid"
)

type progressService struct {
	planner  *Planner
	progress repository.ProgressRepo
	history  repository.HistoryRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewProgressService(
	planner *Planner,
	progress repository.ProgressRepo,
	history repository.HistoryRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ProgressService {
	return &progressService{
		planner:  planner,
		progress: progress,
		history:  history,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *progressService) GetOrCreate(ctx context.Context, date string, assigned []domain.Chapter) (rec *domain.ProgressRecord, err error) {
	d, err := resolveDate("date", date, time.Now())
	if err != nil {
		return nil, err
	}
	defer s.planner.locks.lock(d.Year())()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx)
		var created bool
		rec, created, err = loadOrNewRecord(ctx, txProgress, d, assigned, time.Now().UTC())
		if err != nil || !created {
			return err
		}
		return txProgress.Upsert(ctx, rec)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *progressService) MarkComplete(ctx context.Context, req app.MarkCompleteRequest) (res *app.ProgressResult, err error) {
	fields := map[string]any{"date": req.Date, "requested": len(req.Chapters)}
	defer observe(ctx, s.observer, "mark-complete", time.Now(), fields, &err)

	now := nowOr(req.Now)
	d, err := resolveDate("date", req.Date, now)
	if err != nil {
		return nil, err
	}
	if err = s.planner.validateChapters(req.Chapters); err != nil {
		return nil, err
	}
	date := domain.FormatDate(d)
	fields["date"] = date

	defer s.planner.locks.lock(d.Year())()

	// Resolved before the transaction opens: the assignment reads through the
	// shared handle, which may be a single pooled connection.
	a, err := s.planner.assign(ctx, s.progress, d)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx)
		txHistory := repository.NewSQLiteHistoryRepo(tx)

		rec, _, err := loadOrNewRecord(ctx, txProgress, d, a.Chapters, now.UTC())
		if err != nil {
			return err
		}

		chapters := req.Chapters
		if len(chapters) == 0 {
			chapters = rec.Assigned
		}
		added := rec.MarkChapters(chapters, now.UTC())
		if err := txProgress.Upsert(ctx, rec); err != nil {
			return err
		}

		h, err := recomputeHistory(ctx, txProgress, txHistory, d.Year(), now.UTC())
		if err != nil {
			return err
		}
		res = &app.ProgressResult{
			Record:         rec,
			CurrentStreak:  h.CurrentStreak,
			LongestStreak:  h.LongestStreak,
			NewlyCompleted: added,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	fields["added"] = res.NewlyCompleted
	fields["fully_complete"] = res.Record.FullyComplete
	return res, nil
}

func (s *progressService) UndoCompletion(ctx context.Context, req app.UndoRequest) (res *app.ProgressResult, err error) {
	fields := map[string]any{"date": req.Date, "book": req.Book, "chapter": req.Chapter}
	defer observe(ctx, s.observer, "undo-completion", time.Now(), fields, &err)

	now := nowOr(req.Now)
	d, err := resolveDate("date", req.Date, now)
	if err != nil {
		return nil, err
	}
	if req.Book == "" || req.Chapter < 1 {
		return nil, &app.ValidationError{
			Field:   "chapter",
			Value:   fmt.Sprintf("%s %d", req.Book, req.Chapter),
			Message: "book and a positive chapter number are required",
		}
	}
	date := domain.FormatDate(d)

	defer s.planner.locks.lock(d.Year())()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx)
		txHistory := repository.NewSQLiteHistoryRepo(tx)

		rec, err := txProgress.GetByDate(ctx, date)
		if errors.Is(err, repository.ErrNotFound) {
			return &app.NotFoundError{Entity: "reading progress", Key: date}
		}
		if err != nil {
			return err
		}

		if !rec.UndoChapter(req.Book, req.Chapter, now.UTC()) {
			return &app.NotFoundError{
				Entity: "completed chapter",
				Key:    fmt.Sprintf("%s %s %d", date, req.Book, req.Chapter),
			}
		}
		if err := txProgress.Upsert(ctx, rec); err != nil {
			return err
		}

		h, err := recomputeHistory(ctx, txProgress, txHistory, d.Year(), now.UTC())
		if err != nil {
			return err
		}
		res = &app.ProgressResult{Record: rec, CurrentStreak: h.CurrentStreak, LongestStreak: h.LongestStreak}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *progressService) RecomputeHistory(ctx context.Context, year int) (h *domain.YearHistory, err error) {
	defer observe(ctx, s.observer, "recompute-history", time.Now(), map[string]any{"year": year}, &err)
	defer s.planner.locks.lock(year)()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		h, err = recomputeHistory(ctx,
			repository.NewSQLiteProgressRepo(tx),
			repository.NewSQLiteHistoryRepo(tx),
			year, time.Now().UTC())
		return err
	})
	if err != nil {
		return nil, err
	}
	return h, nil
}

func (s *progressService) Progress(ctx context.Context, date string) (*app.ProgressView, error) {
	d, err := resolveDate("date", date, time.Now())
	if err != nil {
		return nil, err
	}
	date = domain.FormatDate(d)

	rec, err := s.progress.GetByDate(ctx, date)
	if err == nil {
		return &app.ProgressView{
			Date:          date,
			Exists:        true,
			Assigned:      rec.Assigned,
			Completed:     rec.Completed,
			IsComplete:    rec.FullyComplete,
			CompletionPct: rec.CompletionPct(),
			CompletedAt:   rec.CompletedAt,
		}, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	a, err := s.planner.assign(ctx, s.progress, d)
	if err != nil {
		return nil, err
	}
	return &app.ProgressView{
		Date:      date,
		Assigned:  a.Chapters,
		Completed: []domain.CompletedChapter{},
	}, nil
}

func (s *progressService) Range(ctx context.Context, req app.RangeRequest) ([]app.DayProgress, error) {
	start, err := domain.ParseDate(req.Start)
	if err != nil {
		return nil, &app.ValidationError{Field: "start", Value: req.Start, Message: "expected YYYY-MM-DD"}
	}
	end, err := domain.ParseDate(req.End)
	if err != nil {
		return nil, &app.ValidationError{Field: "end", Value: req.End, Message: "expected YYYY-MM-DD"}
	}
	if end.Before(start) {
		return nil, &app.ValidationError{Field: "end", Value: req.End, Message: "before start"}
	}

	recs, err := s.progress.ListByDateRange(ctx, domain.FormatDate(start), domain.FormatDate(end))
	if err != nil {
		return nil, err
	}
	days := make([]app.DayProgress, 0, len(recs))
	for _, r := range recs {
		days = append(days, app.DayProgress{
			Date:           r.Date,
			IsComplete:     r.FullyComplete,
			CompletionPct:  r.CompletionPct(),
			AssignedCount:  len(r.Assigned),
			CompletedCount: len(r.Completed),
		})
	}
	return days, nil
}

// loadOrNewRecord returns the stored record for d or a new unsaved one with
// the given assignment. created reports which.
func loadOrNewRecord(ctx context.Context, progress repository.ProgressRepo, d time.Time, assigned []domain.Chapter, now time.Time) (*domain.ProgressRecord, bool, error) {
	date := domain.FormatDate(d)
	rec, err := progress.GetByDate(ctx, date)
	if err == nil {
		return rec, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, false, err
	}
	return domain.NewProgressRecord(uuid.New().String(), date, d.Year(), assigned, now), true, nil
}

// recomputeHistory rebuilds the year's aggregates from its fully complete
// records and persists them.
func recomputeHistory(ctx context.Context, progress repository.ProgressRepo, history repository.HistoryRepo, year int, now time.Time) (*domain.YearHistory, error) {
	h, err := history.GetByYear(ctx, year)
	if errors.Is(err, repository.ErrNotFound) {
		h, err = domain.NewYearHistory(year), nil
	}
	if err != nil {
		return nil, err
	}

	recs, err := progress.ListCompleteByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, 0, len(recs))
	chapters := 0
	for _, r := range recs {
		d, err := domain.ParseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("recomputing history %d: %w", year, err)
		}
		dates = append(dates, d)
		chapters += len(r.Completed)
	}

	h.TotalDaysRead = len(recs)
	h.TotalChaptersRead = chapters
	h.LastReadDate = nil
	if len(recs) > 0 {
		last := recs[len(recs)-1].Date
		h.LastReadDate = &last
	}
	h.CurrentStreak = scheduler.CurrentStreak(dates)
	h.LongestStreak = scheduler.LongestStreak(dates)
	h.UpdatedAt = now

	if err := history.Upsert(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}
