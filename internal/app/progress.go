package app

import (
	"time"

	"github.com/alexanderramin/lectio/internal/domain"
)

type MarkCompleteRequest struct {
	Date string
	// Chapters to mark. Empty marks the whole assignment for Date.
	Chapters []domain.Chapter
	Now      *time.Time
}

type UndoRequest struct {
	Date    string
	Book    string
	Chapter int
	Now     *time.Time
}

// ProgressResult is returned by every progress mutation.
type ProgressResult struct {
	Record        *domain.ProgressRecord
	CurrentStreak int
	LongestStreak int
	// NewlyCompleted counts chapters this call added; zero on a repeated mark.
	NewlyCompleted int
}

// ProgressView is the stored state for one date. Exists is false when no
// completion was ever reported; Assigned then holds the current assignment.
type ProgressView struct {
	Date          string
	Exists        bool
	Assigned      []domain.Chapter
	Completed     []domain.CompletedChapter
	IsComplete    bool
	CompletionPct float64
	CompletedAt   *time.Time
}

type DayProgress struct {
	Date           string
	IsComplete     bool
	CompletionPct  float64
	AssignedCount  int
	CompletedCount int
}

type RangeRequest struct {
	Start string
	End   string
}
