package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/alexanderramin/lectio/internal/app"
	"github.com/alexanderramin/lectio/internal/corpus"
	"github.com/alexanderramin/lectio/internal/domain"
	"github.com/alexanderramin/lectio/internal/repository"
	"github.com/alexanderramin/lectio/internal/scheduler"
	"github.com/puzpuzpuz/xsync/v4"
)

// Planner turns the corpus and a capacity model into daily assignments.
// It is shared by every service so that a date always resolves to the same
// chapters regardless of the caller, and so that writers share its year
// locks.
type Planner struct {
	Index    *corpus.Index
	Version  string
	Capacity domain.Capacity

	locks *yearLocks
}

// NewPlanner returns a Planner over index. A nil capacity falls back to the
// default weekday/weekend model.
func NewPlanner(index *corpus.Index, version string, capacity domain.Capacity) *Planner {
	if capacity == nil {
		capacity = domain.DefaultCapacity()
	}
	return &Planner{Index: index, Version: version, Capacity: capacity, locks: newYearLocks()}
}

// dayAssignment is the resolved slice of the corpus for one date.
type dayAssignment struct {
	Date      time.Time
	Consumed  int
	Remaining int
	Plan      scheduler.Plan
	Day       scheduler.DayQuota
	Chapters  []domain.Chapter
}

// assign replans the rest of d's year from everything completed before d
// and returns d's slice. progress must be usable outside any open
// transaction on the same connection.
func (p *Planner) assign(ctx context.Context, progress repository.ProgressRepo, d time.Time) (*dayAssignment, error) {
	d = domain.TruncateDay(d)
	consumed, err := progress.SumCompletedBefore(ctx, d.Year(), domain.FormatDate(d))
	if err != nil {
		return nil, fmt.Errorf("resolving assignment for %s: %w", domain.FormatDate(d), err)
	}

	remaining := max(0, p.Index.Len()-consumed)
	_, end := domain.YearBounds(d.Year())
	plan := scheduler.Allocate(remaining, d, end, p.Capacity)

	day, ok := plan.DayFor(d)
	if !ok {
		day = scheduler.DayQuota{Date: d, Quota: 1, Placeholder: remaining == 0}
	}

	return &dayAssignment{
		Date:      d,
		Consumed:  consumed,
		Remaining: remaining,
		Plan:      plan,
		Day:       day,
		Chapters:  p.Index.Slice(consumed, consumed+day.Quota),
	}, nil
}

// meta describes a in corpus coordinates.
func (p *Planner) meta(a *dayAssignment) app.ReadingMeta {
	m := app.ReadingMeta{
		Version:           p.Version,
		Total:             p.Index.Len(),
		ConsumedBefore:    a.Consumed,
		RemainingAfterDay: max(0, a.Remaining-len(a.Chapters)),
		Shortfall:         a.Plan.Shortfall,
	}
	_, end := domain.YearBounds(a.Date.Year())
	m.DaysLeftAfterDay = domain.DaysBetween(a.Date, end)
	if len(a.Chapters) > 0 {
		m.IndexStart = a.Consumed + 1
		m.IndexEnd = a.Consumed + len(a.Chapters)
	}
	return m
}

func (p *Planner) validateChapters(chapters []domain.Chapter) error {
	for _, ch := range chapters {
		if !p.Index.Contains(ch) {
			return &app.ValidationError{
				Field:   "chapters",
				Value:   fmt.Sprintf("%s %d", ch.Book, ch.Chapter),
				Message: "not in corpus",
			}
		}
	}
	return nil
}

// yearLocks serializes read-modify-write cycles per calendar year.
type yearLocks struct {
	m *xsync.Map[int, *sync.Mutex]
}

func newYearLocks() *yearLocks {
	return &yearLocks{m: xsync.NewMap[int, *sync.Mutex]()}
}

// lock acquires the mutex for year and returns its release func.
func (l *yearLocks) lock(year int) func() {
	mu, _ := l.m.LoadOrStore(year, &sync.Mutex{})
	mu.Lock()
	return mu.Unlock
}

// lockAll acquires every year in ascending order and returns one release
// func for all of them.
func (l *yearLocks) lockAll(years []int) func() {
	sorted := slices.Clone(years)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	releases := make([]func(), 0, len(sorted))
	for _, y := range sorted {
		releases = append(releases, l.lock(y))
	}
	return func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}
}

func nowOr(t *time.Time) time.Time {
	if t != nil {
		return *t
	}
	return time.Now()
}

// resolveDate parses s as YYYY-MM-DD, or returns the calendar date of now
// when s is empty.
func resolveDate(field, s string, now time.Time) (time.Time, error) {
	if s == "" {
		return domain.TruncateDay(now), nil
	}
	d, err := domain.ParseDate(s)
	if err != nil {
		return time.Time{}, &app.ValidationError{Field: field, Value: s, Message: "expected YYYY-MM-DD"}
	}
	return d, nil
}
