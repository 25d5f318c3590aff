package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/lectio/internal/domain"
)

// ChapterSet reports whether a chapter belongs to the corpus.
type ChapterSet interface {
	Contains(ch domain.Chapter) bool
}

// Validate checks docs before conversion and returns every problem found.
// is_fully_complete and completed_at are not checked: Convert derives them.
func Validate(docs []ProgressDocument, corpus ChapterSet) []error {
	var errs []error
	seenDates := make(map[string]int, len(docs))

	for i, doc := range docs {
		where := fmt.Sprintf("documents[%d]", i)
		if doc.Date != "" {
			where = fmt.Sprintf("documents[%d] (%s)", i, doc.Date)
		}

		d, err := time.Parse(time.DateOnly, doc.Date)
		switch {
		case doc.Date == "":
			errs = append(errs, fmt.Errorf("%s: date is required", where))
		case err != nil:
			errs = append(errs, fmt.Errorf("%s: invalid date format %q (expected YYYY-MM-DD)", where, doc.Date))
		case doc.Year != 0 && doc.Year != d.Year():
			errs = append(errs, fmt.Errorf("%s: year %d does not match date", where, doc.Year))
		}
		if prev, dup := seenDates[doc.Date]; dup && doc.Date != "" {
			errs = append(errs, fmt.Errorf("%s: duplicate date, first seen at documents[%d]", where, prev))
		} else {
			seenDates[doc.Date] = i
		}

		errs = append(errs, validateAssigned(where, doc.ChaptersAssigned, corpus)...)
		errs = append(errs, validateCompleted(where, doc.CompletedChapters, corpus)...)
	}

	return errs
}

func validateAssigned(where string, chapters []ChapterDoc, corpus ChapterSet) []error {
	var errs []error
	seen := make(map[domain.ChapterKey]bool, len(chapters))
	for j, c := range chapters {
		ch := domain.Chapter{Book: c.Book, Chapter: c.Chapter}
		if !corpus.Contains(ch) {
			errs = append(errs, fmt.Errorf("%s.chapters_assigned[%d]: unknown chapter %s %d", where, j, c.Book, c.Chapter))
			continue
		}
		if seen[ch.Key()] {
			errs = append(errs, fmt.Errorf("%s.chapters_assigned[%d]: duplicate chapter %s %d", where, j, c.Book, c.Chapter))
		}
		seen[ch.Key()] = true
	}
	return errs
}

func validateCompleted(where string, chapters []CompletedDoc, corpus ChapterSet) []error {
	var errs []error
	for j, c := range chapters {
		ch := domain.Chapter{Book: c.Book, Chapter: c.Chapter}
		if !corpus.Contains(ch) {
			errs = append(errs, fmt.Errorf("%s.completed_chapters[%d]: unknown chapter %s %d", where, j, c.Book, c.Chapter))
		}
		if c.CompletedAt.IsZero() {
			errs = append(errs, fmt.Errorf("%s.completed_chapters[%d]: completed_at is required", where, j))
		}
	}
	return errs
}
