package domain

import "time"

// ProgressRecord is the persisted completion state for one calendar day.
// Assigned is captured when the record is first created and is not
// rewritten afterwards, even if the dynamic plan for that date changes.
type ProgressRecord struct {
	ID            string
	Date          string
	Year          int
	Assigned      []Chapter
	Completed     []CompletedChapter
	FullyComplete bool
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewProgressRecord creates an empty record for date with the given assignment.
func NewProgressRecord(id, date string, year int, assigned []Chapter, now time.Time) *ProgressRecord {
	a := make([]Chapter, len(assigned))
	copy(a, assigned)
	return &ProgressRecord{
		ID:        id,
		Date:      date,
		Year:      year,
		Assigned:  a,
		Completed: []CompletedChapter{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsCompleted reports whether the chapter identified by key has been read.
func (p *ProgressRecord) IsCompleted(key ChapterKey) bool {
	for _, c := range p.Completed {
		if c.Key() == key {
			return true
		}
	}
	return false
}

// MarkChapters appends a completion for every chapter not already completed,
// stamped with now. Returns the number of new completions.
func (p *ProgressRecord) MarkChapters(chapters []Chapter, now time.Time) int {
	seen := make(map[ChapterKey]bool, len(p.Completed)+len(chapters))
	for _, c := range p.Completed {
		seen[c.Key()] = true
	}

	added := 0
	for _, ch := range chapters {
		if seen[ch.Key()] {
			continue
		}
		p.Completed = append(p.Completed, CompletedChapter{
			Book:        ch.Book,
			Chapter:     ch.Chapter,
			CompletedAt: now,
		})
		seen[ch.Key()] = true
		added++
	}

	p.refreshCompletion(now)
	p.UpdatedAt = now
	return added
}

// UndoChapter removes the completion for book/chapter. Returns false when the
// chapter was not completed; the record is left untouched in that case.
func (p *ProgressRecord) UndoChapter(book string, chapter int, now time.Time) bool {
	key := ChapterKey{Book: book, Chapter: chapter}
	kept := make([]CompletedChapter, 0, len(p.Completed))
	removed := false
	for _, c := range p.Completed {
		if c.Key() == key {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	if !removed {
		return false
	}

	p.Completed = kept
	p.refreshCompletion(now)
	p.UpdatedAt = now
	return true
}

// refreshCompletion recomputes FullyComplete as completed ⊇ assigned and
// maintains CompletedAt: set on the first transition to complete, cleared
// when the day stops being complete.
func (p *ProgressRecord) refreshCompletion(now time.Time) {
	p.FullyComplete = CoversAll(p.Completed, p.Assigned)
	switch {
	case p.FullyComplete && p.CompletedAt == nil:
		t := now
		p.CompletedAt = &t
	case !p.FullyComplete:
		p.CompletedAt = nil
	}
}

// CompletionPct returns completed/assigned as a percentage. A record with no
// assignment reports 0.
func (p *ProgressRecord) CompletionPct() float64 {
	return CompletionPct(len(p.Completed), len(p.Assigned))
}

// CoversAll reports whether the identities in completed are a superset of
// the identities in assigned.
func CoversAll(completed []CompletedChapter, assigned []Chapter) bool {
	done := make(map[ChapterKey]bool, len(completed))
	for _, c := range completed {
		done[c.Key()] = true
	}
	for _, a := range assigned {
		if !done[a.Key()] {
			return false
		}
	}
	return true
}

// CompletionPct returns completed/assigned*100, or 0 when assigned is zero.
func CompletionPct(completed, assigned int) float64 {
	if assigned <= 0 {
		return 0
	}
	return float64(completed) / float64(assigned) * 100
}
