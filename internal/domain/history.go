package domain

import "time"

// YearHistory holds reading aggregates for one calendar year. Every field is
// derived from that year's progress records.
type YearHistory struct {
	Year              int
	TotalDaysRead     int
	CurrentStreak     int
	LongestStreak     int
	TotalChaptersRead int
	LastReadDate      *string
	UpdatedAt         time.Time
}

// NewYearHistory returns a zeroed history for year.
func NewYearHistory(year int) *YearHistory {
	return &YearHistory{Year: year}
}
