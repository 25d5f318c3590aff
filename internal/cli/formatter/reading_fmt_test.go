package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/lectio/internal/app"
	"github.com/alexanderramin/lectio/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleReading() *app.ReadingResponse {
	return &app.ReadingResponse{
		Date:  "2025-01-02",
		Year:  2025,
		Label: "Genesis 4–6",
		Chapters: []domain.Chapter{
			{Book: "Genesis", Chapter: 4},
			{Book: "Genesis", Chapter: 5},
			{Book: "Genesis", Chapter: 6},
		},
		Quota: 3,
		Meta: app.ReadingMeta{
			Version: "NIV", Total: 1189, ConsumedBefore: 3,
			IndexStart: 4, IndexEnd: 6, RemainingAfterDay: 1183, DaysLeftAfterDay: 363,
		},
	}
}

func TestFormatReading_ListsChapters(t *testing.T) {
	out := FormatReading(sampleReading())

	assert.Contains(t, out, "THU, JAN 2 2025")
	assert.Contains(t, out, "Genesis 4–6")
	assert.Contains(t, out, "Genesis 5")
	assert.Contains(t, out, "NIV 4-6 of 1189, 1183 left over 363 days")
	assert.NotContains(t, out, "streak")
}

func TestFormatReading_WithProgressAndStats(t *testing.T) {
	resp := sampleReading()
	resp.Progress = &app.ReadingProgress{
		Completed: []domain.CompletedChapter{
			{Book: "Genesis", Chapter: 4, CompletedAt: time.Now()},
		},
		CompletionPct: 100.0 / 3,
	}
	resp.Stats = &app.ReadingStats{CurrentStreak: 1, LongestStreak: 9}

	out := FormatReading(resp)
	assert.Contains(t, out, "✔ Genesis 4")
	assert.Contains(t, out, "○ Genesis 5")
	assert.Contains(t, out, " 33%")
	assert.Contains(t, out, "1 day")
	assert.Contains(t, out, "9 days")
	assert.NotContains(t, out, "done")
}

func TestFormatReading_Placeholder(t *testing.T) {
	out := FormatReading(&app.ReadingResponse{
		Date:        "2025-12-30",
		Placeholder: true,
		Warnings:    []string{"2 chapter(s) do not fit"},
	})
	assert.Contains(t, out, "Nothing left to read")
	assert.Contains(t, out, "! 2 chapter(s) do not fit")
}
