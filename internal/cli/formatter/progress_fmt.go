package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lectio/internal/app"
)

// FormatMarkResult renders the outcome of a mark or undo.
func FormatMarkResult(res *app.ProgressResult) string {
	var b strings.Builder
	rec := res.Record

	switch {
	case res.NewlyCompleted > 0:
		fmt.Fprintf(&b, "%s marked %d chapter(s) for %s\n",
			StyleGreen.Render("✔"), res.NewlyCompleted, rec.Date)
	default:
		fmt.Fprintf(&b, "%s updated %s\n", StyleBlue.Render("●"), rec.Date)
	}
	fmt.Fprintf(&b, "  %s  %d/%d\n",
		RenderProgress(rec.CompletionPct()/100, 20), len(rec.Completed), len(rec.Assigned))
	if rec.FullyComplete {
		b.WriteString("  " + StyleGreen.Render("Day complete") + "\n")
	}
	fmt.Fprintf(&b, "  %s %s   %s %s\n",
		Dim("streak"), StreakStyled(res.CurrentStreak),
		Dim("best"), StyleFg.Render(Streak(res.LongestStreak)))
	return b.String()
}

// FormatProgressView renders the stored state for one date.
func FormatProgressView(v *app.ProgressView) string {
	var b strings.Builder
	b.WriteString(Header(HumanDay(v.Date)))
	b.WriteString("\n")

	if !v.Exists {
		b.WriteString(Dim("No progress recorded.") + "\n")
		if len(v.Assigned) > 0 {
			fmt.Fprintf(&b, "Assigned: %d chapter(s)\n", len(v.Assigned))
		}
		return b.String()
	}

	done := make(map[string]bool, len(v.Completed))
	for _, c := range v.Completed {
		done[fmt.Sprintf("%s %d", c.Book, c.Chapter)] = true
	}
	for _, ch := range v.Assigned {
		name := fmt.Sprintf("%s %d", ch.Book, ch.Chapter)
		fmt.Fprintf(&b, "  %s %s\n", Check(done[name]), name)
	}
	fmt.Fprintf(&b, "  %s\n", RenderProgress(v.CompletionPct/100, 20))
	if v.CompletedAt != nil {
		fmt.Fprintf(&b, "  %s %s\n", Dim("completed"), v.CompletedAt.Format("15:04 MST"))
	}
	return b.String()
}

// FormatRange renders per-day completion between two dates.
func FormatRange(days []app.DayProgress) string {
	if len(days) == 0 {
		return Dim("No progress in range.") + "\n"
	}
	rows := make([][]string, 0, len(days))
	complete := 0
	for _, d := range days {
		if d.IsComplete {
			complete++
		}
		rows = append(rows, []string{
			d.Date,
			fmt.Sprintf("%d/%d", d.CompletedCount, d.AssignedCount),
			RenderCompactBar(d.CompletionPct/100, 10, false),
			Check(d.IsComplete),
		})
	}
	out := RenderTable([]string{"DATE", "READ", "", "DONE"}, rows, 1)
	return out + Dim(fmt.Sprintf("%d of %d day(s) complete", complete, len(days))) + "\n"
}

// FormatImportResult summarizes a progress import.
func FormatImportResult(res *app.ImportResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s imported %d day(s)", StyleGreen.Render("✔"), res.Imported)
	if res.Replaced > 0 {
		fmt.Fprintf(&b, ", replaced %d", res.Replaced)
	}
	if res.Skipped > 0 {
		fmt.Fprintf(&b, ", %s", StyleYellow.Render(fmt.Sprintf("skipped %d already stored", res.Skipped)))
	}
	b.WriteString("\n")
	if len(res.Years) > 0 {
		ys := make([]string, len(res.Years))
		for i, y := range res.Years {
			ys[i] = fmt.Sprint(y)
		}
		b.WriteString(Dim("  history recomputed for "+strings.Join(ys, ", ")) + "\n")
	}
	return b.String()
}
