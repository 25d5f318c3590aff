package importer

import (
	"testing"
	"time"

	"github.com/alexanderramin/lectio/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var importNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestConvert_ReplaysCompletions(t *testing.T) {
	doc := validDoc("2025-01-01")
	doc.CompletedChapters = []CompletedDoc{
		{Book: "Genesis", Chapter: 2, CompletedAt: ts("2025-01-01T21:00:00Z")},
		{Book: "Genesis", Chapter: 1, CompletedAt: ts("2025-01-01T20:00:00Z")},
		{Book: "Genesis", Chapter: 1, CompletedAt: ts("2025-01-01T22:00:00Z")},
	}
	doc.IsFullyComplete = false

	recs, err := Convert([]ProgressDocument{doc}, importNow)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	rec := recs[0]

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, 2025, rec.Year)
	assert.True(t, rec.FullyComplete, "derived from chapters, not the document flag")
	require.Len(t, rec.Completed, 2)
	assert.Equal(t, domain.ChapterKey{Book: "Genesis", Chapter: 1}, rec.Completed[0].Key())
	assert.Equal(t, time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC), rec.Completed[0].CompletedAt)
	require.NotNil(t, rec.CompletedAt)
	assert.Equal(t, time.Date(2025, 1, 1, 21, 0, 0, 0, time.UTC), *rec.CompletedAt)
	assert.Equal(t, time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC), rec.CreatedAt, "earliest completion")
}

func TestConvert_PartialDayKeepsTimestamps(t *testing.T) {
	doc := validDoc("2025-01-01")
	doc.IsFullyComplete = true
	created := ts("2025-01-01T06:00:00Z")
	updated := ts("2025-01-03T06:00:00Z")
	doc.CreatedAt, doc.UpdatedAt = &created, &updated

	rec := convertOne(t, doc)
	assert.False(t, rec.FullyComplete)
	assert.Nil(t, rec.CompletedAt)
	assert.Equal(t, created.Time, rec.CreatedAt)
	assert.Equal(t, updated.Time, rec.UpdatedAt)
}

func TestExport_MirrorsRecord(t *testing.T) {
	now := time.Date(2025, 1, 1, 20, 0, 0, 0, time.UTC)
	rec := domain.NewProgressRecord("id", "2025-01-01", 2025, []domain.Chapter{{Book: "Genesis", Chapter: 1}}, now)
	rec.MarkChapters(rec.Assigned, now)

	docs := Export([]*domain.ProgressRecord{rec})
	require.Len(t, docs, 1)
	doc := docs[0]
	assert.Equal(t, "2025-01-01", doc.Date)
	assert.True(t, doc.IsFullyComplete)
	assert.Equal(t, []ChapterDoc{{Book: "Genesis", Chapter: 1}}, doc.ChaptersAssigned)
	require.NotNil(t, doc.CompletedAt)
	assert.Equal(t, now, doc.CompletedAt.Time)

	back := convertOne(t, docs[0])
	assert.Equal(t, rec.Completed, back.Completed)
	assert.Equal(t, rec.CompletedAt, back.CompletedAt)
}

func TestConvert_UntouchedDayCreatedNow(t *testing.T) {
	doc := validDoc("2025-01-01")
	doc.CompletedChapters = nil

	rec := convertOne(t, doc)
	assert.Equal(t, importNow, rec.CreatedAt)
	assert.Empty(t, rec.Completed)
	assert.False(t, rec.FullyComplete)
}

func TestConvert_RejectsUnparsableDate(t *testing.T) {
	good := validDoc("2025-01-01")
	bad := validDoc("2025-01-02")
	bad.Date = "2025-02-30"

	recs, err := Convert([]ProgressDocument{good, bad}, importNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "documents[1]")
	assert.Nil(t, recs)
}

func convertOne(t *testing.T, doc ProgressDocument) *domain.ProgressRecord {
	t.Helper()
	recs, err := Convert([]ProgressDocument{doc}, importNow)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	return recs[0]
}
