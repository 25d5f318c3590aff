package importer

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/lectio/internal/domain"
	"github.com/google/uuid"
)

// Convert turns validated documents into progress records. Completions are
// replayed in time order, so FullyComplete and CompletedAt follow the record
// rules rather than the document flags. Call Validate first; Convert only
// rejects documents whose date does not parse.
func Convert(docs []ProgressDocument, now time.Time) ([]*domain.ProgressRecord, error) {
	now = now.UTC()
	recs := make([]*domain.ProgressRecord, 0, len(docs))

	for i, doc := range docs {
		d, err := domain.ParseDate(doc.Date)
		if err != nil {
			return nil, fmt.Errorf("documents[%d]: %w", i, err)
		}

		assigned := make([]domain.Chapter, 0, len(doc.ChaptersAssigned))
		for _, c := range doc.ChaptersAssigned {
			assigned = append(assigned, domain.Chapter{Book: c.Book, Chapter: c.Chapter})
		}

		completed := append([]CompletedDoc(nil), doc.CompletedChapters...)
		sort.SliceStable(completed, func(i, j int) bool {
			return completed[i].CompletedAt.Before(completed[j].CompletedAt.Time)
		})

		// Without a stored creation time the first completion stands in.
		created := now
		switch {
		case doc.CreatedAt != nil && !doc.CreatedAt.IsZero():
			created = doc.CreatedAt.UTC()
		case len(completed) > 0:
			created = completed[0].CompletedAt.UTC()
		}
		rec := domain.NewProgressRecord(uuid.New().String(), doc.Date, d.Year(), assigned, created)
		for _, c := range completed {
			rec.MarkChapters([]domain.Chapter{{Book: c.Book, Chapter: c.Chapter}}, c.CompletedAt.UTC())
		}

		if doc.UpdatedAt != nil && doc.UpdatedAt.After(rec.UpdatedAt) {
			rec.UpdatedAt = doc.UpdatedAt.UTC()
		}
		recs = append(recs, rec)
	}

	return recs, nil
}

// Export converts records back into documents.
func Export(recs []*domain.ProgressRecord) []ProgressDocument {
	docs := make([]ProgressDocument, 0, len(recs))
	for _, r := range recs {
		doc := ProgressDocument{
			Date:              r.Date,
			Year:              r.Year,
			ChaptersAssigned:  make([]ChapterDoc, 0, len(r.Assigned)),
			CompletedChapters: make([]CompletedDoc, 0, len(r.Completed)),
			IsFullyComplete:   r.FullyComplete,
		}
		for _, c := range r.Assigned {
			doc.ChaptersAssigned = append(doc.ChaptersAssigned, ChapterDoc{Book: c.Book, Chapter: c.Chapter})
		}
		for _, c := range r.Completed {
			doc.CompletedChapters = append(doc.CompletedChapters, CompletedDoc{
				Book:        c.Book,
				Chapter:     c.Chapter,
				CompletedAt: NewTimestamp(c.CompletedAt),
			})
		}
		if r.CompletedAt != nil {
			ts := NewTimestamp(*r.CompletedAt)
			doc.CompletedAt = &ts
		}
		created, updated := NewTimestamp(r.CreatedAt), NewTimestamp(r.UpdatedAt)
		doc.CreatedAt, doc.UpdatedAt = &created, &updated
		docs = append(docs, doc)
	}
	return docs
}
