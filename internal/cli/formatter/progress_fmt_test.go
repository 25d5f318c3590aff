package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/lectio/internal/app"
	"github.com/alexanderramin/lectio/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatMarkResult_Complete(t *testing.T) {
	now := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)
	rec := domain.NewProgressRecord("id", "2025-01-01", 2025, []domain.Chapter{
		{Book: "Genesis", Chapter: 1}, {Book: "Genesis", Chapter: 2},
	}, now)
	rec.MarkChapters(rec.Assigned, now)

	out := FormatMarkResult(&app.ProgressResult{Record: rec, NewlyCompleted: 2, CurrentStreak: 1, LongestStreak: 1})
	assert.Contains(t, out, "marked 2 chapter(s) for 2025-01-01")
	assert.Contains(t, out, "2/2")
	assert.Contains(t, out, "Day complete")
	assert.Contains(t, out, "1 day")
}

func TestFormatMarkResult_NoChange(t *testing.T) {
	now := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)
	rec := domain.NewProgressRecord("id", "2025-01-01", 2025, []domain.Chapter{{Book: "Genesis", Chapter: 1}}, now)

	out := FormatMarkResult(&app.ProgressResult{Record: rec})
	assert.Contains(t, out, "updated 2025-01-01")
	assert.Contains(t, out, "0/1")
	assert.NotContains(t, out, "Day complete")
}

func TestFormatProgressView(t *testing.T) {
	out := FormatProgressView(&app.ProgressView{
		Date:     "2025-01-03",
		Assigned: []domain.Chapter{{Book: "Genesis", Chapter: 7}},
	})
	assert.Contains(t, out, "No progress recorded.")
	assert.Contains(t, out, "Assigned: 1 chapter(s)")

	done := time.Date(2025, 1, 3, 7, 30, 0, 0, time.UTC)
	out = FormatProgressView(&app.ProgressView{
		Date:          "2025-01-03",
		Exists:        true,
		Assigned:      []domain.Chapter{{Book: "Genesis", Chapter: 7}},
		Completed:     []domain.CompletedChapter{{Book: "Genesis", Chapter: 7, CompletedAt: done}},
		IsComplete:    true,
		CompletionPct: 100,
		CompletedAt:   &done,
	})
	assert.Contains(t, out, "✔ Genesis 7")
	assert.Contains(t, out, "100%")
	assert.Contains(t, out, "07:30 UTC")
}

func TestFormatRange(t *testing.T) {
	assert.Contains(t, FormatRange(nil), "No progress in range.")

	out := FormatRange([]app.DayProgress{
		{Date: "2025-01-01", IsComplete: true, CompletionPct: 100, AssignedCount: 3, CompletedCount: 3},
		{Date: "2025-01-02", CompletionPct: 50, AssignedCount: 4, CompletedCount: 2},
	})
	assert.Contains(t, out, "2025-01-02")
	assert.Contains(t, out, "3/3")
	assert.Contains(t, out, "1 of 2 day(s) complete")
}

func TestFormatImportResult(t *testing.T) {
	out := FormatImportResult(&app.ImportResult{Imported: 3, Skipped: 2, Years: []int{2024, 2025}})
	assert.Contains(t, out, "imported 3 day(s)")
	assert.Contains(t, out, "skipped 2 already stored")
	assert.NotContains(t, out, "replaced")
	assert.Contains(t, out, "history recomputed for 2024, 2025")
}
