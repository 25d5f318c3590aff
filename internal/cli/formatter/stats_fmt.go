package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/lectio/internal/app"
)

// FormatStats renders the yearly reading summary. now anchors the relative
// last-read date.
func FormatStats(s *app.StatsResponse, now time.Time) string {
	var b strings.Builder

	last := Dim("never")
	if s.LastReadDate != nil {
		last = *s.LastReadDate
		if t, err := time.Parse(time.DateOnly, last); err == nil {
			last += Dim(" (" + RelativeDayFrom(t, now) + ")")
		}
	}

	rows := [][]string{
		{"Current streak", StreakStyled(s.CurrentStreak)},
		{"Longest streak", Streak(s.LongestStreak)},
		{"Days read", fmt.Sprintf("%d", s.TotalDaysRead)},
		{"Chapters read", fmt.Sprintf("%d", s.TotalChaptersRead)},
		{"Last read", last},
		{"Year elapsed", RenderProgress(s.YearProgressPct/100, 20)},
		{"Bible read", RenderProgress(s.CorpusProgressPct/100, 20)},
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "%s %s\n", Dim(fmt.Sprintf("%-16s", r[0])), r[1])
	}

	p := s.Pace
	b.WriteString("\n")
	b.WriteString(PaceIndicator(p.Level))
	fmt.Fprintf(&b, "  %d chapters left over %d days\n", p.Remaining, p.DaysLeft)
	fmt.Fprintf(&b, "  %s %.2f/day  %s %.2f/day\n",
		Dim("need"), p.RequiredDaily, Dim("capacity"), p.CapacityDaily)
	if p.BehindPlan > 0 {
		fmt.Fprintf(&b, "  %s\n", PaceColor(p.Level).Render(
			fmt.Sprintf("%d chapter(s) behind plan (expected %s)", p.BehindPlan, Pct(p.ExpectedPct))))
	}

	return RenderBox(fmt.Sprintf("%d reading", s.Year), strings.TrimRight(b.String(), "\n")) + "\n"
}
