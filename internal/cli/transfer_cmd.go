package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/lectio/internal/cli/formatter"
	"github.com/alexanderramin/lectio/internal/importer"
	"github.com/spf13/cobra"
)

func newImportCmd(a *App) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import reading progress from a JSON export",
		Long: `Import reading progress documents, either a JSON array or one
document per line. Dates that already have progress are skipped unless
--overwrite is given. Streaks and totals are recomputed afterwards.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.Transfer.ImportFile(cmd.Context(), args[0], overwrite)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Replace progress already stored for a date")
	return cmd
}

func newExportCmd(a *App) *cobra.Command {
	var year int
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a year's reading progress as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("year") {
				year = a.now().Year()
			}
			docs, err := a.Transfer.Export(cmd.Context(), year)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating export file: %w", err)
				}
				defer f.Close()
				w = f
			}
			if err := importer.Encode(w, docs); err != nil {
				return fmt.Errorf("writing export: %w", err)
			}
			if outPath != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s exported %d day(s) to %s\n",
					formatter.StyleGreen.Render("✔"), len(docs), outPath)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year to export (default current year)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to file instead of stdout")
	return cmd
}
