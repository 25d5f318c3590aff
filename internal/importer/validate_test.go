package importer

import (
	"testing"
	"time"

	"github.com/alexanderramin/lectio/internal/corpus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ts(s string) Timestamp {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return NewTimestamp(t)
}

func validDoc(date string) ProgressDocument {
	return ProgressDocument{
		Date: date,
		Year: 2025,
		ChaptersAssigned: []ChapterDoc{
			{Book: "Genesis", Chapter: 1},
			{Book: "Genesis", Chapter: 2},
		},
		CompletedChapters: []CompletedDoc{
			{Book: "Genesis", Chapter: 1, CompletedAt: ts("2025-01-01T20:00:00Z")},
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	docs := []ProgressDocument{validDoc("2025-01-01"), validDoc("2025-01-02")}
	assert.Empty(t, Validate(docs, corpus.NIV()))
}

func TestValidate_YearOptional(t *testing.T) {
	doc := validDoc("2025-01-01")
	doc.Year = 0
	assert.Empty(t, Validate([]ProgressDocument{doc}, corpus.NIV()))
}

func TestValidate_CollectsEveryError(t *testing.T) {
	missingDate := validDoc("")
	badDate := validDoc("01/02/2025")
	wrongYear := validDoc("2024-12-31")
	dupe := validDoc("2025-01-05")
	unknown := validDoc("2025-01-06")
	unknown.ChaptersAssigned = append(unknown.ChaptersAssigned, ChapterDoc{Book: "Genesis", Chapter: 51}, ChapterDoc{Book: "Genesis", Chapter: 1})
	unknown.CompletedChapters = append(unknown.CompletedChapters, CompletedDoc{Book: "Hezekiah", Chapter: 1, CompletedAt: ts("2025-01-06T20:00:00Z")})

	errs := Validate([]ProgressDocument{missingDate, badDate, wrongYear, dupe, dupe, unknown}, corpus.NIV())
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}

	require.Len(t, msgs, 7)
	assert.Contains(t, msgs, "documents[0]: date is required")
	assert.Contains(t, msgs, `documents[1] (01/02/2025): invalid date format "01/02/2025" (expected YYYY-MM-DD)`)
	assert.Contains(t, msgs, "documents[2] (2024-12-31): year 2025 does not match date")
	assert.Contains(t, msgs, "documents[4] (2025-01-05): duplicate date, first seen at documents[3]")
	assert.Contains(t, msgs, "documents[5] (2025-01-06).chapters_assigned[2]: unknown chapter Genesis 51")
	assert.Contains(t, msgs, "documents[5] (2025-01-06).chapters_assigned[3]: duplicate chapter Genesis 1")
	assert.Contains(t, msgs, "documents[5] (2025-01-06).completed_chapters[1]: unknown chapter Hezekiah 1")
}

func TestValidate_MissingCompletionTime(t *testing.T) {
	doc := validDoc("2025-01-01")
	doc.CompletedChapters[0].CompletedAt = Timestamp{}

	errs := Validate([]ProgressDocument{doc}, corpus.NIV())
	require.Len(t, errs, 1)
	assert.ErrorContains(t, errs[0], "completed_at is required")
}
