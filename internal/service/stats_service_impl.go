package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/lectio/internal/app"
	"github.com/alexanderramin/lectio/internal/domain"
	"github.com/alexanderramin/lectio/internal/repository"
	"github.com/alexanderramin/lectio/internal/scheduler"
)

type statsService struct {
	planner  *Planner
	progress repository.ProgressRepo
	history  repository.HistoryRepo
	observer UseCaseObserver
}

func NewStatsService(
	planner *Planner,
	progress repository.ProgressRepo,
	history repository.HistoryRepo,
	observers ...UseCaseObserver,
) StatsService {
	return &statsService{
		planner:  planner,
		progress: progress,
		history:  history,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *statsService) Current(ctx context.Context, req app.StatsRequest) (resp *app.StatsResponse, err error) {
	defer observe(ctx, s.observer, "stats", time.Now(), nil, &err)

	today := domain.TruncateDay(nowOr(req.Now))
	year := today.Year()
	start, end := domain.YearBounds(year)
	resp = &app.StatsResponse{Year: year}

	h, err := s.history.GetByYear(ctx, year)
	switch {
	case err == nil:
		resp.CurrentStreak = h.CurrentStreak
		resp.LongestStreak = h.LongestStreak
		resp.TotalDaysRead = h.TotalDaysRead
		resp.TotalChaptersRead = h.TotalChaptersRead
		resp.LastReadDate = h.LastReadDate
		daysInYear := domain.DaysBetween(start, end) + 1
		resp.YearProgressPct = float64(domain.DaysBetween(start, today)+1) / float64(daysInYear) * 100
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	readBefore, err := s.progress.SumCompletedBefore(ctx, year, domain.FormatDate(today))
	if err != nil {
		return nil, err
	}
	readTotal, err := s.progress.SumCompletedBefore(ctx, year, domain.FormatDate(today.AddDate(0, 0, 1)))
	if err != nil {
		return nil, err
	}
	total := s.planner.Index.Len()
	resp.CorpusProgressPct = domain.CompletionPct(readTotal, total)

	plan, err := scheduler.PlanForYear(year, total, s.planner.Capacity)
	if err != nil {
		return nil, err
	}
	pace := scheduler.ComputePace(scheduler.PaceInput{
		Now:           today,
		Deadline:      end,
		Total:         total,
		Read:          readBefore,
		ExpectedByNow: scheduler.ExpectedBefore(plan, today),
		Capacity:      s.planner.Capacity,
	})
	resp.Pace = app.PaceView{
		Level:         pace.Level,
		DaysLeft:      pace.DaysLeft,
		Remaining:     pace.Remaining,
		BehindPlan:    pace.Behind,
		RequiredDaily: pace.RequiredDaily,
		CapacityDaily: pace.CapacityDaily,
		SlackPerDay:   pace.SlackPerDay,
		ExpectedPct:   pace.ExpectedPct,
	}
	return resp, nil
}
