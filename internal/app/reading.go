package app

import (
	"time"

	"github.com/alexanderramin/lectio/internal/domain"
)

type ReadingRequest struct {
	// Date is YYYY-MM-DD. Empty means the calendar date of Now.
	Date            string
	IncludeProgress bool
	Now             *time.Time
}

func NewReadingRequest(date string) ReadingRequest {
	return ReadingRequest{Date: date, IncludeProgress: true}
}

// ReadingMeta describes where the day's slice sits in the corpus. IndexStart
// and IndexEnd are 1-based and inclusive; both are zero when nothing is left.
type ReadingMeta struct {
	Version           string
	Total             int
	ConsumedBefore    int
	IndexStart        int
	IndexEnd          int
	RemainingAfterDay int
	DaysLeftAfterDay  int
	Shortfall         int
}

type ReadingProgress struct {
	Completed     []domain.CompletedChapter
	IsComplete    bool
	CompletionPct float64
}

type ReadingStats struct {
	CurrentStreak int
	LongestStreak int
}

type ReadingResponse struct {
	Date        string
	Year        int
	Label       string
	Chapters    []domain.Chapter
	Quota       int
	Placeholder bool
	Meta        ReadingMeta
	Progress    *ReadingProgress
	Stats       *ReadingStats
	Warnings    []string
}

type PlanDay struct {
	Date     string
	Quota    int
	Capacity int
	Weekend  bool
}

type PlanResponse struct {
	Year         int
	Total        int
	YearCapacity int
	Days         []PlanDay
}
