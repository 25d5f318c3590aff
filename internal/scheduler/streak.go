package scheduler

import "time"

// CurrentStreak counts consecutive calendar days walking backwards from the
// most recent date in dates. dates must be sorted ascending. The walk
// starts at the latest completed day, not at today, so a gap between the
// last completion and today does not reset the streak.
func CurrentStreak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	streak := 1
	for i := len(dates) - 1; i > 0; i-- {
		if !dates[i-1].AddDate(0, 0, 1).Equal(dates[i]) {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak returns the longest run of consecutive calendar days in
// dates, which must be sorted ascending.
func LongestStreak(dates []time.Time) int {
	if len(dates) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(dates); i++ {
		if dates[i-1].AddDate(0, 0, 1).Equal(dates[i]) {
			run++
			longest = max(longest, run)
			continue
		}
		run = 1
	}
	return longest
}
