package cli

import (
	"time"

	"github.com/alexanderramin/lectio/internal/api"
	"github.com/alexanderramin/lectio/internal/corpus"
	"github.com/alexanderramin/lectio/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Reading  service.ReadingService
	Progress service.ProgressService
	Stats    service.StatsService
	Transfer service.TransferService

	// Corpus resolves "Book N" arguments.
	Corpus *corpus.Index

	// Addr and Server configure the serve command.
	Addr   string
	Server api.Options

	// IsInteractive reports whether prompts may be shown.
	IsInteractive func() bool
	// Now overrides the clock. Nil means time.Now.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "lectio" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "lectio",
		Short:         "Daily Bible reading plan and streak tracker",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newTodayCmd(app),
		newReadingCmd(app),
		newPlanCmd(app),
		newMarkCmd(app),
		newUndoCmd(app),
		newProgressCmd(app),
		newRangeCmd(app),
		newStatsCmd(app),
		newImportCmd(app),
		newExportCmd(app),
		newServeCmd(app),
	)

	return root
}
