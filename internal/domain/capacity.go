package domain

import "time"

// Capacity returns the maximum number of chapters that may be assigned on a
// given calendar day. Implementations must be deterministic and return a
// positive value for every date.
type Capacity func(d time.Time) int

// Default per-day limits.
const (
	DefaultWeekdayCapacity = 3
	DefaultWeekendCapacity = 4
)

// IsWeekend reports whether d falls on a Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// WeekdayCapacity builds a Capacity that allows weekday chapters Monday
// through Friday and weekend chapters on Saturday and Sunday.
func WeekdayCapacity(weekday, weekend int) Capacity {
	return func(d time.Time) int {
		if IsWeekend(d) {
			return weekend
		}
		return weekday
	}
}

// DefaultCapacity is 3 chapters on weekdays and 4 on weekends.
func DefaultCapacity() Capacity {
	return WeekdayCapacity(DefaultWeekdayCapacity, DefaultWeekendCapacity)
}

// YearCapacity sums capacity over every day of year.
func YearCapacity(year int, capacity Capacity) int {
	start, end := YearBounds(year)
	total := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		total += capacity(d)
	}
	return total
}
