package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/lectio/internal/corpus"
	"github.com/alexanderramin/lectio/internal/db"
	"github.com/alexanderramin/lectio/internal/domain"
	"github.com/alexanderramin/lectio/internal/repository"
	"github.com/alexanderramin/lectio/internal/testutil"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	db       *sql.DB
	progress *repository.SQLiteProgressRepo
	history  *repository.SQLiteHistoryRepo
	planner  *Planner
	reading  ReadingService
	marks    ProgressService
	stats    StatsService
	transfer TransferService
}

func newFixture(t *testing.T, planner *Planner, observers ...UseCaseObserver) *fixture {
	t.Helper()
	database := testutil.NewTestDB(t)
	return newFixtureWithUoW(t, database, testutil.NewTestUoW(database), planner, observers...)
}

func newFixtureWithUoW(t *testing.T, database *sql.DB, uow db.UnitOfWork, planner *Planner, observers ...UseCaseObserver) *fixture {
	t.Helper()
	if planner == nil {
		planner = nivPlanner()
	}
	progress := repository.NewSQLiteProgressRepo(database)
	history := repository.NewSQLiteHistoryRepo(database)
	return &fixture{
		db:       database,
		progress: progress,
		history:  history,
		planner:  planner,
		reading:  NewReadingService(planner, progress, history, observers...),
		marks:    NewProgressService(planner, progress, history, uow, observers...),
		stats:    NewStatsService(planner, progress, history, observers...),
		transfer: NewTransferService(planner, progress, uow, observers...),
	}
}

func nivPlanner() *Planner {
	return NewPlanner(corpus.NIV(), corpus.NIVVersion, domain.DefaultCapacity())
}

// miniPlanner is a ten-chapter corpus (Alpha 1-4, Beta 1-6) read at three
// chapters a day.
func miniPlanner() *Planner {
	idx := corpus.NewIndex([]corpus.Book{{Name: "Alpha", Chapters: 4}, {Name: "Beta", Chapters: 6}})
	return NewPlanner(idx, "MINI", domain.WeekdayCapacity(3, 3))
}

// at returns mid-morning UTC on date.
func at(t *testing.T, date string) *time.Time {
	t.Helper()
	d, err := domain.ParseDate(date)
	require.NoError(t, err)
	ts := d.Add(10 * time.Hour)
	return &ts
}
