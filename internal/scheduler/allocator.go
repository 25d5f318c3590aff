package scheduler

import (
	"time"

	"github.com/alexanderramin/lectio/internal/domain"
)

// DayQuota is the number of chapters planned for one calendar day.
// Placeholder marks the nominal 1-chapter days that follow early exhaustion
// of the corpus; slicing the index for those days yields nothing.
type DayQuota struct {
	Date        time.Time
	Quota       int
	Placeholder bool
}

// Plan maps every day of a date range to a quota. Plans are recomputed on
// demand and never persisted.
type Plan struct {
	Days []DayQuota
	// Shortfall is the number of chapters that did not fit under the
	// capacity of the planned days.
	Shortfall int
}

// DayFor returns the planned day for d.
func (p Plan) DayFor(d time.Time) (DayQuota, bool) {
	if len(p.Days) == 0 {
		return DayQuota{}, false
	}
	i := domain.DaysBetween(p.Days[0].Date, d)
	if i < 0 || i >= len(p.Days) {
		return DayQuota{}, false
	}
	return p.Days[i], true
}

// QuotaFor returns the quota planned for d.
func (p Plan) QuotaFor(d time.Time) (int, bool) {
	day, ok := p.DayFor(d)
	return day.Quota, ok
}

// Total sums every quota, placeholders included.
func (p Plan) Total() int {
	total := 0
	for _, d := range p.Days {
		total += d.Quota
	}
	return total
}

// Allocated sums the quotas that draw real chapters from the corpus.
func (p Plan) Allocated() int {
	total := 0
	for _, d := range p.Days {
		if !d.Placeholder {
			total += d.Quota
		}
	}
	return total
}

// Allocate spreads remaining chapters over every day in [start, end] so the
// corpus is consumed exactly by end. Each day prefers its full capacity but
// is pulled down so that every later day still gets at least one chapter,
// and pushed up so that later days can absorb what is left. Quotas never
// exceed capacity; chapters that cannot be placed are reported in
// Plan.Shortfall. Once the remaining count reaches zero every later day gets
// a placeholder quota of 1.
func Allocate(remaining int, start, end time.Time, capacity domain.Capacity) Plan {
	start, end = domain.TruncateDay(start), domain.TruncateDay(end)
	if end.Before(start) {
		return Plan{}
	}

	n := domain.DaysBetween(start, end) + 1
	days := make([]time.Time, n)
	caps := make([]int, n)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
		caps[i] = capacity(days[i])
	}

	// futureMax[i] is the capacity of all days strictly after day i.
	futureMax := make([]int, n)
	for i := n - 2; i >= 0; i-- {
		futureMax[i] = futureMax[i+1] + caps[i+1]
	}

	plan := Plan{Days: make([]DayQuota, n)}
	for i, d := range days {
		if remaining <= 0 {
			for j := i; j < n; j++ {
				plan.Days[j] = DayQuota{Date: days[j], Quota: 1, Placeholder: true}
			}
			return plan
		}

		daysAfter := n - i - 1
		minNeeded := max(1, remaining-futureMax[i])
		maxAllowed := max(1, remaining-daysAfter)

		quota := min(caps[i], maxAllowed)
		quota = max(quota, minNeeded)
		quota = clamp(quota, 1, min(caps[i], remaining))

		plan.Days[i] = DayQuota{Date: d, Quota: quota}
		remaining -= quota
	}

	plan.Shortfall = remaining
	return plan
}

// PlanForYear allocates total chapters over every day of year. The quotas
// must sum to total exactly; chapters left over, or placeholder days after
// an early finish, mean the capacity model and the corpus size disagree and
// are reported as a ConsistencyFault.
func PlanForYear(year, total int, capacity domain.Capacity) (Plan, error) {
	start, end := domain.YearBounds(year)
	plan := Allocate(total, start, end, capacity)
	if planned := plan.Total(); plan.Shortfall != 0 || planned != total {
		return plan, &ConsistencyFault{Year: year, Total: total, Allocated: planned, Leftover: total - planned}
	}
	return plan, nil
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
