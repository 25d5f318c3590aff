package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/lectio/internal/app"
	"github.com/alexanderramin/lectio/internal/importer"
	"github.com/alexanderramin/lectio/internal/repository"
	"github.com/alexanderramin/lectio/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completedDoc(date string, chapters ...int) importer.ProgressDocument {
	d, err := time.Parse(time.DateOnly, date)
	if err != nil {
		panic(err)
	}
	doc := importer.ProgressDocument{Date: date, Year: d.Year()}
	for i, n := range chapters {
		doc.ChaptersAssigned = append(doc.ChaptersAssigned, importer.ChapterDoc{Book: "Genesis", Chapter: n})
		doc.CompletedChapters = append(doc.CompletedChapters, importer.CompletedDoc{
			Book:        "Genesis",
			Chapter:     n,
			CompletedAt: importer.NewTimestamp(d.Add(20*time.Hour + time.Duration(i)*time.Minute)),
		})
	}
	return doc
}

func TestImportDocuments_StoresAndRecomputesHistory(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	docs := []importer.ProgressDocument{
		completedDoc("2025-01-01", 1, 2, 3),
		completedDoc("2025-01-02", 4, 5, 6),
		completedDoc("2024-12-31", 50),
	}
	res, err := f.transfer.ImportDocuments(ctx, docs, false)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Imported)
	assert.Equal(t, []int{2024, 2025}, res.Years)

	h, err := f.history.GetByYear(ctx, 2025)
	require.NoError(t, err)
	assert.Equal(t, 2, h.TotalDaysRead)
	assert.Equal(t, 6, h.TotalChaptersRead)
	assert.Equal(t, 2, h.LongestStreak)

	h, err = f.history.GetByYear(ctx, 2024)
	require.NoError(t, err)
	assert.Equal(t, 1, h.TotalDaysRead)

	// Imported progress drives the next assignment.
	resp, err := f.reading.ReadingFor(ctx, app.ReadingRequest{Date: "2025-01-03", Now: at(t, "2025-01-03")})
	require.NoError(t, err)
	assert.Equal(t, "Genesis 7–9", resp.Label)
}

func TestImportDocuments_SkipsExistingUnlessOverwrite(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	_, err := f.marks.MarkComplete(ctx, app.MarkCompleteRequest{Date: "2025-01-01", Now: at(t, "2025-01-01")})
	require.NoError(t, err)
	before, err := f.progress.GetByDate(ctx, "2025-01-01")
	require.NoError(t, err)

	docs := []importer.ProgressDocument{completedDoc("2025-01-01", 1), completedDoc("2025-01-02", 4, 5, 6)}

	res, err := f.transfer.ImportDocuments(ctx, docs, false)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 1, res.Imported)

	rec, err := f.progress.GetByDate(ctx, "2025-01-01")
	require.NoError(t, err)
	assert.Len(t, rec.Completed, 3)

	res, err = f.transfer.ImportDocuments(ctx, docs, true)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Replaced)

	rec, err = f.progress.GetByDate(ctx, "2025-01-01")
	require.NoError(t, err)
	assert.Equal(t, before.ID, rec.ID)
	assert.Len(t, rec.Completed, 1)
}

func TestImportDocuments_ValidationError(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	bad := completedDoc("2025-01-01", 1)
	bad.ChaptersAssigned[0].Chapter = 99
	_, err := f.transfer.ImportDocuments(ctx, []importer.ProgressDocument{bad, completedDoc("2025-01-02", 2)}, false)
	require.Error(t, err)

	var verr *app.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "unknown chapter Genesis 99")

	_, err = f.progress.GetByDate(ctx, "2025-01-02")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestImportDocuments_RollbackOnSecondUpsertFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	failUoW := &testutil.FailingUoW{DB: database, Table: "reading_progress", FailOn: 2, Err: fmt.Errorf("injected upsert failure")}
	f := newFixtureWithUoW(t, database, failUoW, nil)
	ctx := context.Background()

	docs := []importer.ProgressDocument{completedDoc("2025-01-01", 1, 2, 3), completedDoc("2025-01-02", 4, 5, 6)}
	_, err := f.transfer.ImportDocuments(ctx, docs, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected upsert failure")

	_, err = f.progress.GetByDate(ctx, "2025-01-01")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = f.history.GetByYear(ctx, 2025)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestImportFile_ThenExport(t *testing.T) {
	f := newFixture(t, nil)
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "progress.json")
	out, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, importer.Encode(out, []importer.ProgressDocument{
		completedDoc("2025-01-02", 4, 5, 6),
		completedDoc("2025-01-01", 1, 2, 3),
	}))
	require.NoError(t, out.Close())

	res, err := f.transfer.ImportFile(ctx, path, false)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)

	docs, err := f.transfer.Export(ctx, 2025)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "2025-01-01", docs[0].Date)
	assert.True(t, docs[0].IsFullyComplete)
	assert.Len(t, docs[1].CompletedChapters, 3)

	docs, err = f.transfer.Export(ctx, 2024)
	require.NoError(t, err)
	assert.Empty(t, docs)

	_, err = f.transfer.Export(ctx, 0)
	var verr *app.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestImportFile_Missing(t *testing.T) {
	f := newFixture(t, nil)
	_, err := f.transfer.ImportFile(context.Background(), filepath.Join(t.TempDir(), "nope.json"), false)
	assert.ErrorContains(t, err, "loading import file")
}
