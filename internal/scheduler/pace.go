package scheduler

import (
	"time"

	"github.com/alexanderramin/lectio/internal/domain"
)

// PaceInput is the reading state ComputePace judges against the plan.
type PaceInput struct {
	Now      time.Time
	Deadline time.Time
	Total    int
	Read     int
	// ExpectedByNow is how many chapters the static full-year plan had
	// scheduled strictly before Now.
	ExpectedByNow int
	Capacity      domain.Capacity
}

// PaceResult holds the pace level and the figures behind it.
type PaceResult struct {
	Level             domain.PaceLevel
	DaysLeft          int
	Remaining         int
	Behind            int
	RequiredDaily     float64
	CapacityDaily     float64
	SlackPerDay       float64
	ProgressPct       float64
	ExpectedPct       float64
	RemainingCapacity int
}

// ComputePace compares actual reading against the static plan and the
// capacity left before the deadline.
func ComputePace(input PaceInput) PaceResult {
	now := domain.TruncateDay(input.Now)
	deadline := domain.TruncateDay(input.Deadline)
	remaining := max(0, input.Total-input.Read)

	result := PaceResult{
		Remaining: remaining,
		Behind:    max(0, input.ExpectedByNow-input.Read),
	}
	if input.Total > 0 {
		result.ProgressPct = float64(input.Read) / float64(input.Total) * 100
		result.ExpectedPct = float64(input.ExpectedByNow) / float64(input.Total) * 100
	}

	if remaining == 0 {
		result.Level = domain.PaceOnTrack
		return result
	}

	// Today counts as a reading day.
	daysLeft := domain.DaysBetween(now, deadline) + 1
	result.DaysLeft = max(0, daysLeft)
	if daysLeft <= 0 {
		result.Level = domain.PaceBehind
		result.RequiredDaily = float64(remaining)
		return result
	}

	capLeft := 0
	for d := now; !d.After(deadline); d = d.AddDate(0, 0, 1) {
		capLeft += input.Capacity(d)
	}
	result.RemainingCapacity = capLeft
	result.RequiredDaily = float64(remaining) / float64(daysLeft)
	result.CapacityDaily = float64(capLeft) / float64(daysLeft)
	result.SlackPerDay = result.CapacityDaily - result.RequiredDaily

	switch {
	case remaining > capLeft:
		result.Level = domain.PaceBehind
	case result.Behind > 0:
		result.Level = domain.PaceSlipping
	default:
		result.Level = domain.PaceOnTrack
	}
	return result
}

// ExpectedBefore sums the quotas plan assigns to days strictly before d.
func ExpectedBefore(plan Plan, d time.Time) int {
	d = domain.TruncateDay(d)
	total := 0
	for _, day := range plan.Days {
		if !day.Date.Before(d) {
			break
		}
		if !day.Placeholder {
			total += day.Quota
		}
	}
	return total
}
