package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/lectio/internal/app"
	"github.com/alexanderramin/lectio/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatStats(t *testing.T) {
	last := "2025-03-09"
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	out := FormatStats(&app.StatsResponse{
		Year:              2025,
		CurrentStreak:     12,
		LongestStreak:     30,
		TotalDaysRead:     60,
		TotalChaptersRead: 190,
		LastReadDate:      &last,
		YearProgressPct:   18.9,
		CorpusProgressPct: 16.0,
		Pace: app.PaceView{
			Level: domain.PaceSlipping, DaysLeft: 297, Remaining: 999,
			BehindPlan: 6, RequiredDaily: 3.36, CapacityDaily: 3.29, ExpectedPct: 16.5,
		},
	}, now)

	assert.Contains(t, out, "2025 READING")
	assert.Contains(t, out, "12 days")
	assert.Contains(t, out, "2025-03-09 (Yesterday)")
	assert.Contains(t, out, "SLIPPING")
	assert.Contains(t, out, "999 chapters left over 297 days")
	assert.Contains(t, out, "6 chapter(s) behind plan (expected 16.5%)")
}

func TestFormatStats_NeverRead(t *testing.T) {
	out := FormatStats(&app.StatsResponse{Year: 2025, Pace: app.PaceView{Level: domain.PaceOnTrack}}, time.Now())
	assert.Contains(t, out, "never")
	assert.Contains(t, out, "ON PACE")
	assert.NotContains(t, out, "behind plan")
}
