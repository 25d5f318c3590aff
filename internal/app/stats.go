package app

import (
	"time"

	"github.com/alexanderramin/lectio/internal/domain"
)

type StatsRequest struct {
	Now *time.Time
}

type PaceView struct {
	Level         domain.PaceLevel
	DaysLeft      int
	Remaining     int
	BehindPlan    int
	RequiredDaily float64
	CapacityDaily float64
	SlackPerDay   float64
	ExpectedPct   float64
}

type StatsResponse struct {
	Year              int
	CurrentStreak     int
	LongestStreak     int
	TotalDaysRead     int
	TotalChaptersRead int
	LastReadDate      *string
	YearProgressPct   float64
	CorpusProgressPct float64
	Pace              PaceView
}
