package api

import (
	"time"

	"github.com/alexanderramin/lectio/internal/app"
	"github.com/alexanderramin/lectio/internal/domain"
)

// ErrorResponse is the body of every non-2xx reply.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type readingMetaJSON struct {
	Version           string `json:"version"`
	Total             int    `json:"total_chapters"`
	ConsumedBefore    int    `json:"chapters_read_before"`
	IndexStart        int    `json:"index_start"`
	IndexEnd          int    `json:"index_end"`
	RemainingAfterDay int    `json:"remaining_after_today"`
	DaysLeftAfterDay  int    `json:"days_left_after_today"`
	Shortfall         int    `json:"shortfall"`
}

type readingProgressJSON struct {
	CompletedChapters []domain.CompletedChapter `json:"completed_chapters"`
	IsComplete        bool                      `json:"is_complete"`
	CompletionPct     float64                   `json:"completion_percentage"`
}

type readingStatsJSON struct {
	CurrentStreak int `json:"current_streak"`
	LongestStreak int `json:"longest_streak"`
}

type readingJSON struct {
	Date        string               `json:"date"`
	Year        int                  `json:"year"`
	Label       string               `json:"label"`
	Chapters    []domain.Chapter     `json:"chapters"`
	Quota       int                  `json:"quota"`
	Placeholder bool                 `json:"placeholder"`
	Meta        readingMetaJSON      `json:"meta"`
	Progress    *readingProgressJSON `json:"progress,omitempty"`
	Stats       *readingStatsJSON    `json:"stats,omitempty"`
	Warnings    []string             `json:"warnings,omitempty"`
}

func toReadingJSON(r *app.ReadingResponse) readingJSON {
	out := readingJSON{
		Date:        r.Date,
		Year:        r.Year,
		Label:       r.Label,
		Chapters:    r.Chapters,
		Quota:       r.Quota,
		Placeholder: r.Placeholder,
		Meta:        readingMetaJSON(r.Meta),
		Warnings:    r.Warnings,
	}
	if r.Progress != nil {
		out.Progress = &readingProgressJSON{
			CompletedChapters: r.Progress.Completed,
			IsComplete:        r.Progress.IsComplete,
			CompletionPct:     r.Progress.CompletionPct,
		}
	}
	if r.Stats != nil {
		out.Stats = &readingStatsJSON{CurrentStreak: r.Stats.CurrentStreak, LongestStreak: r.Stats.LongestStreak}
	}
	return out
}

type markCompleteBody struct {
	Date     string           `json:"date"`
	Chapters []domain.Chapter `json:"chapters"`
}

type undoBody struct {
	Date    string `json:"date"`
	Book    string `json:"book"`
	Chapter int    `json:"chapter"`
}

type progressRecordJSON struct {
	Date              string                    `json:"date"`
	Year              int                       `json:"year"`
	ChaptersAssigned  []domain.Chapter          `json:"chapters_assigned"`
	CompletedChapters []domain.CompletedChapter `json:"completed_chapters"`
	IsFullyComplete   bool                      `json:"is_fully_complete"`
	CompletionPct     float64                   `json:"completion_percentage"`
	CompletedAt       *time.Time                `json:"completed_at"`
}

type mutationJSON struct {
	Success        bool               `json:"success"`
	Progress       progressRecordJSON `json:"progress"`
	CurrentStreak  int                `json:"current_streak"`
	LongestStreak  int                `json:"longest_streak"`
	NewlyCompleted int                `json:"newly_completed"`
}

func toMutationJSON(r *app.ProgressResult) mutationJSON {
	rec := r.Record
	return mutationJSON{
		Success: true,
		Progress: progressRecordJSON{
			Date:              rec.Date,
			Year:              rec.Year,
			ChaptersAssigned:  rec.Assigned,
			CompletedChapters: rec.Completed,
			IsFullyComplete:   rec.FullyComplete,
			CompletionPct:     rec.CompletionPct(),
			CompletedAt:       rec.CompletedAt,
		},
		CurrentStreak:  r.CurrentStreak,
		LongestStreak:  r.LongestStreak,
		NewlyCompleted: r.NewlyCompleted,
	}
}

type progressViewJSON struct {
	Date              string                    `json:"date"`
	Exists            bool                      `json:"exists"`
	ChaptersAssigned  []domain.Chapter          `json:"chapters_assigned"`
	CompletedChapters []domain.CompletedChapter `json:"completed_chapters"`
	IsFullyComplete   bool                      `json:"is_fully_complete"`
	CompletionPct     float64                   `json:"completion_percentage"`
	CompletedAt       *time.Time                `json:"completed_at"`
}

func toProgressViewJSON(v *app.ProgressView) progressViewJSON {
	return progressViewJSON{
		Date:              v.Date,
		Exists:            v.Exists,
		ChaptersAssigned:  v.Assigned,
		CompletedChapters: v.Completed,
		IsFullyComplete:   v.IsComplete,
		CompletionPct:     v.CompletionPct,
		CompletedAt:       v.CompletedAt,
	}
}

type dayProgressJSON struct {
	Date           string  `json:"date"`
	IsComplete     bool    `json:"is_complete"`
	CompletionPct  float64 `json:"completion_percentage"`
	AssignedCount  int     `json:"chapters_assigned_count"`
	CompletedCount int     `json:"chapters_completed_count"`
}

type rangeJSON struct {
	Start string            `json:"start_date"`
	End   string            `json:"end_date"`
	Days  []dayProgressJSON `json:"days"`
}

func toRangeJSON(start, end string, days []app.DayProgress) rangeJSON {
	out := rangeJSON{Start: start, End: end, Days: make([]dayProgressJSON, 0, len(days))}
	for _, d := range days {
		out.Days = append(out.Days, dayProgressJSON(d))
	}
	return out
}

type paceJSON struct {
	Level         domain.PaceLevel `json:"level"`
	DaysLeft      int              `json:"days_left"`
	Remaining     int              `json:"remaining_chapters"`
	BehindPlan    int              `json:"behind_plan"`
	RequiredDaily float64          `json:"required_daily"`
	CapacityDaily float64          `json:"capacity_daily"`
	SlackPerDay   float64          `json:"slack_per_day"`
	ExpectedPct   float64          `json:"expected_percentage"`
}

type statsJSON struct {
	Year              int      `json:"year"`
	CurrentStreak     int      `json:"current_streak"`
	LongestStreak     int      `json:"longest_streak"`
	TotalDaysRead     int      `json:"total_days_read"`
	TotalChaptersRead int      `json:"total_chapters_read"`
	LastReadDate      *string  `json:"last_read_date"`
	YearProgressPct   float64  `json:"year_progress_percentage"`
	CorpusProgressPct float64  `json:"corpus_progress_percentage"`
	Pace              paceJSON `json:"pace"`
}

func toStatsJSON(s *app.StatsResponse) statsJSON {
	return statsJSON{
		Year:              s.Year,
		CurrentStreak:     s.CurrentStreak,
		LongestStreak:     s.LongestStreak,
		TotalDaysRead:     s.TotalDaysRead,
		TotalChaptersRead: s.TotalChaptersRead,
		LastReadDate:      s.LastReadDate,
		YearProgressPct:   s.YearProgressPct,
		CorpusProgressPct: s.CorpusProgressPct,
		Pace:              paceJSON(s.Pace),
	}
}

type planDayJSON struct {
	Date     string `json:"date"`
	Quota    int    `json:"quota"`
	Capacity int    `json:"capacity"`
	Weekend  bool   `json:"weekend"`
}

type planJSON struct {
	Year         int           `json:"year"`
	Total        int           `json:"total_chapters"`
	YearCapacity int           `json:"year_capacity"`
	Days         []planDayJSON `json:"days"`
}

func toPlanJSON(p *app.PlanResponse) planJSON {
	out := planJSON{Year: p.Year, Total: p.Total, YearCapacity: p.YearCapacity, Days: make([]planDayJSON, 0, len(p.Days))}
	for _, d := range p.Days {
		out.Days = append(out.Days, planDayJSON(d))
	}
	return out
}
