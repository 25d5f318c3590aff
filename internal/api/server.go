// Package api exposes the reading plan over HTTP.
package api

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alexanderramin/lectio/internal/app"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Services are the use cases served over HTTP.
type Services struct {
	Reading  app.ReadingUseCase
	Progress app.ProgressUseCase
	Stats    app.StatsUseCase
	// Transfer backs import and export. Nil leaves those routes out.
	Transfer app.TransferUseCase
}

// Options tune the HTTP boundary.
type Options struct {
	CORSOrigins  []string
	FrontendDist string
	// Gatherer backs /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer
	Logger   zerolog.Logger
	// Now overrides the clock used for "today". Nil means time.Now.
	Now func() time.Time
}

// New builds the fiber application with every route registered.
func New(svc Services, opts Options) *fiber.App {
	f := fiber.New(fiber.Config{
		AppName:               "lectio",
		ErrorHandler:          ErrorHandler,
		DisableStartupMessage: true,
	})

	f.Use(RequestLogger(opts.Logger))
	if len(opts.CORSOrigins) > 0 {
		f.Use(cors.New(cors.Config{
			AllowOrigins: strings.Join(opts.CORSOrigins, ","),
			AllowHeaders: "Origin, Content-Type, Accept",
			AllowMethods: "GET,POST,OPTIONS",
		}))
	}

	h := &handlers{svc: svc, now: opts.Now}
	api := f.Group("/api")
	api.Get("/health", h.health)
	api.Get("/today", h.today)
	api.Get("/reading", h.reading)
	api.Get("/plan/:year", h.plan)
	api.Post("/progress/mark-complete", h.markComplete)
	api.Post("/progress/undo", h.undo)
	api.Get("/progress/range", h.progressRange)
	api.Get("/progress/:date", h.progress)
	api.Get("/stats/current", h.stats)
	if svc.Transfer != nil {
		api.Get("/export/:year", h.exportYear)
		api.Post("/import", h.importDocuments)
	}

	if opts.Gatherer != nil {
		f.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	mountFrontend(f, opts.FrontendDist)
	return f
}

// mountFrontend serves a built single-page app from dist, falling back to
// index.html for client-side routes. Missing directories are skipped.
func mountFrontend(f *fiber.App, dist string) {
	if dist == "" {
		return
	}
	index := filepath.Join(dist, "index.html")
	if _, err := os.Stat(index); err != nil {
		return
	}
	f.Static("/", dist)
	f.Get("/*", func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api/") {
			return fiber.ErrNotFound
		}
		return c.SendFile(index)
	})
}
