package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/lectio/internal/app"
	"github.com/alexanderramin/lectio/internal/corpus"
	"github.com/alexanderramin/lectio/internal/domain"
	"github.com/alexanderramin/lectio/internal/repository"
	"github.com/alexanderramin/lectio/internal/scheduler"
	"github.com/rs/zerolog/log"
)

type readingService struct {
	planner  *Planner
	progress repository.ProgressRepo
	history  repository.HistoryRepo
	observer UseCaseObserver
}

func NewReadingService(
	planner *Planner,
	progress repository.ProgressRepo,
	history repository.HistoryRepo,
	observers ...UseCaseObserver,
) ReadingService {
	return &readingService{
		planner:  planner,
		progress: progress,
		history:  history,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *readingService) ReadingFor(ctx context.Context, req app.ReadingRequest) (resp *app.ReadingResponse, err error) {
	fields := map[string]any{"date": req.Date}
	defer observe(ctx, s.observer, "reading", time.Now(), fields, &err)

	d, err := resolveDate("date", req.Date, nowOr(req.Now))
	if err != nil {
		return nil, err
	}
	date := domain.FormatDate(d)
	fields["date"] = date

	a, err := s.planner.assign(ctx, s.progress, d)
	if err != nil {
		return nil, err
	}
	fields["quota"] = a.Day.Quota

	resp = &app.ReadingResponse{
		Date:        date,
		Year:        d.Year(),
		Label:       corpus.Label(a.Chapters),
		Chapters:    a.Chapters,
		Quota:       a.Day.Quota,
		Placeholder: len(a.Chapters) == 0,
		Meta:        s.planner.meta(a),
	}
	if a.Plan.Shortfall > 0 {
		log.Warn().
			Str("date", date).
			Int("remaining", a.Remaining).
			Int("shortfall", a.Plan.Shortfall).
			Msg("remaining chapters exceed capacity for the rest of the year")
		resp.Warnings = append(resp.Warnings, fmt.Sprintf(
			"%d chapters do not fit in the remaining capacity of %d", a.Plan.Shortfall, d.Year()))
	}

	if !req.IncludeProgress {
		return resp, nil
	}

	resp.Progress = &app.ReadingProgress{Completed: []domain.CompletedChapter{}}
	rec, err := s.progress.GetByDate(ctx, date)
	switch {
	case err == nil:
		resp.Progress.Completed = rec.Completed
		resp.Progress.IsComplete = rec.FullyComplete
		resp.Progress.CompletionPct = rec.CompletionPct()
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	resp.Stats = &app.ReadingStats{}
	h, err := s.history.GetByYear(ctx, d.Year())
	switch {
	case err == nil:
		resp.Stats.CurrentStreak = h.CurrentStreak
		resp.Stats.LongestStreak = h.LongestStreak
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}
	return resp, nil
}

func (s *readingService) PlanView(ctx context.Context, year int) (resp *app.PlanResponse, err error) {
	defer observe(ctx, s.observer, "plan", time.Now(), map[string]any{"year": year}, &err)

	if year < 1 || year > 9999 {
		return nil, &app.ValidationError{Field: "year", Value: fmt.Sprint(year), Message: "out of range"}
	}

	plan, err := scheduler.PlanForYear(year, s.planner.Index.Len(), s.planner.Capacity)
	if err != nil {
		log.Error().Err(err).Int("year", year).Msg("full-year plan does not cover the corpus")
		return nil, err
	}

	resp = &app.PlanResponse{
		Year:         year,
		Total:        plan.Total(),
		YearCapacity: domain.YearCapacity(year, s.planner.Capacity),
		Days:         make([]app.PlanDay, 0, len(plan.Days)),
	}
	for _, day := range plan.Days {
		resp.Days = append(resp.Days, app.PlanDay{
			Date:     domain.FormatDate(day.Date),
			Quota:    day.Quota,
			Capacity: s.planner.Capacity(day.Date),
			Weekend:  domain.IsWeekend(day.Date),
		})
	}
	return resp, nil
}
