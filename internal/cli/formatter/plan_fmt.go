package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lectio/internal/app"
)

// FormatPlan renders the full-year allocation, one row per month, or one
// row per day when daily is set.
func FormatPlan(p *app.PlanResponse, daily bool) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("%d plan", p.Year)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s chapters into %s of capacity\n\n",
		Bold(fmt.Sprintf("%d", p.Total)), Bold(fmt.Sprintf("%d", p.YearCapacity)))

	if daily {
		rows := make([][]string, 0, len(p.Days))
		for _, d := range p.Days {
			day := d.Date
			if d.Weekend {
				day = StyleBlue.Render(day)
			}
			rows = append(rows, []string{day, fmt.Sprintf("%d", d.Quota), fmt.Sprintf("%d", d.Capacity)})
		}
		b.WriteString(RenderTable([]string{"DATE", "QUOTA", "CAP"}, rows, 1, 2))
		return b.String()
	}

	type month struct {
		days, chapters, capacity int
	}
	var order []time.Month
	byMonth := map[time.Month]*month{}
	for _, d := range p.Days {
		t, err := time.Parse(time.DateOnly, d.Date)
		if err != nil {
			continue
		}
		m, ok := byMonth[t.Month()]
		if !ok {
			m = &month{}
			byMonth[t.Month()] = m
			order = append(order, t.Month())
		}
		m.days++
		m.chapters += d.Quota
		m.capacity += d.Capacity
	}

	rows := make([][]string, 0, len(order))
	for _, mo := range order {
		m := byMonth[mo]
		rows = append(rows, []string{
			mo.String(),
			fmt.Sprintf("%d", m.days),
			fmt.Sprintf("%d", m.chapters),
			fmt.Sprintf("%d", m.capacity),
			RenderCompactBar(float64(m.chapters)/float64(max(1, m.capacity)), 10, false),
		})
	}
	b.WriteString(RenderTable([]string{"MONTH", "DAYS", "CHAPTERS", "CAP", "LOAD"}, rows, 1, 2, 3))
	return b.String()
}
