package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/lectio/internal/api"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(a *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and web frontend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") && a.Addr != "" {
				addr = a.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			opts := a.Server
			if opts.Now == nil {
				opts.Now = a.Now
			}
			server := api.New(api.Services{
				Reading:  a.Reading,
				Progress: a.Progress,
				Stats:    a.Stats,
				Transfer: a.Transfer,
			}, opts)

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				log.Info().Str("addr", addr).Msg("http server listening")
				return server.Listen(addr)
			})
			g.Go(func() error {
				<-gctx.Done()
				log.Info().Msg("http server shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return server.ShutdownWithContext(shutdownCtx)
			})
			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8000", "Listen address")
	return cmd
}
