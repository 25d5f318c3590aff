package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/lectio/internal/api"
	"github.com/alexanderramin/lectio/internal/cli"
	"github.com/alexanderramin/lectio/internal/config"
	"github.com/alexanderramin/lectio/internal/corpus"
	"github.com/alexanderramin/lectio/internal/db"
	"github.com/alexanderramin/lectio/internal/logging"
	"github.com/alexanderramin/lectio/internal/repository"
	"github.com/alexanderramin/lectio/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	closer, err := logging.Init(cfg.Verbose, cfg.LogDir)
	if err != nil {
		return fmt.Errorf("initialising logging: %w", err)
	}
	defer closer.Close()

	index := corpus.NIV()
	if err := cfg.Validate(time.Now().Year(), index.Len()); err != nil {
		return fmt.Errorf("invalid plan: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()
	log.Debug().Str("path", cfg.DBPath).Msg("database opened")

	progressRepo := repository.NewSQLiteProgressRepo(database)
	historyRepo := repository.NewSQLiteHistoryRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	observers := []service.UseCaseObserver{
		service.NewLogUseCaseObserver(log.Logger),
		service.NewPrometheusUseCaseObserver(reg),
	}

	planner := service.NewPlanner(index, cfg.Version, cfg.Capacity())

	app := &cli.App{
		Reading:  service.NewReadingService(planner, progressRepo, historyRepo, observers...),
		Progress: service.NewProgressService(planner, progressRepo, historyRepo, uow, observers...),
		Stats:    service.NewStatsService(planner, progressRepo, historyRepo, observers...),
		Transfer: service.NewTransferService(planner, progressRepo, uow, observers...),
		Corpus:   index,
		Addr:     cfg.Addr,
		Server: api.Options{
			CORSOrigins:  cfg.CORSOrigins,
			FrontendDist: cfg.FrontendDist,
			Gatherer:     reg,
			Logger:       log.Logger,
		},
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
