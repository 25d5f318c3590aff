package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/lectio/internal/app"
	"github.com/alexanderramin/lectio/internal/domain"
)

// FormatReading renders one day's assignment, with completion marks when
// the response carries progress.
func FormatReading(resp *app.ReadingResponse) string {
	var b strings.Builder

	b.WriteString(Header(HumanDay(resp.Date)))
	b.WriteString("\n\n")

	if resp.Placeholder {
		b.WriteString(StyleGreen.Render("Nothing left to read this year."))
		b.WriteString("\n")
		writeWarnings(&b, resp.Warnings)
		return b.String()
	}

	b.WriteString("  " + Bold(resp.Label))
	b.WriteString(Dim(fmt.Sprintf("  (%d ch)", resp.Quota)))
	b.WriteString("\n\n")

	done := map[domain.ChapterKey]bool{}
	if resp.Progress != nil {
		for _, c := range resp.Progress.Completed {
			done[c.Key()] = true
		}
	}
	for _, ch := range resp.Chapters {
		fmt.Fprintf(&b, "  %s %s %d\n", Check(done[ch.Key()]), ch.Book, ch.Chapter)
	}
	b.WriteString("\n")

	if resp.Progress != nil {
		b.WriteString("  " + RenderProgress(resp.Progress.CompletionPct/100, 20))
		if resp.Progress.IsComplete {
			b.WriteString("  " + StyleGreen.Render("done"))
		}
		b.WriteString("\n")
	}
	if resp.Stats != nil {
		fmt.Fprintf(&b, "  %s %s   %s %s\n",
			Dim("streak"), StreakStyled(resp.Stats.CurrentStreak),
			Dim("best"), StyleFg.Render(Streak(resp.Stats.LongestStreak)))
	}

	m := resp.Meta
	if m.IndexStart > 0 {
		fmt.Fprintf(&b, "  %s\n", Dim(fmt.Sprintf("%s %d-%d of %d, %d left over %d days",
			m.Version, m.IndexStart, m.IndexEnd, m.Total, m.RemainingAfterDay, m.DaysLeftAfterDay)))
	}
	writeWarnings(&b, resp.Warnings)
	return b.String()
}

func writeWarnings(b *strings.Builder, warnings []string) {
	for _, w := range warnings {
		b.WriteString(StyleYellow.Render("  ! " + w))
		b.WriteString("\n")
	}
}
