package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/lectio/internal/app"
	"github.com/alexanderramin/lectio/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newTodayCmd(a *App) *cobra.Command {
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's chapters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printReading(cmd, a, "", !noProgress)
		},
	}

	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Omit completion state and streaks")
	return cmd
}

func newReadingCmd(a *App) *cobra.Command {
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "reading DATE",
		Short: "Show the chapters assigned to a date (YYYY-MM-DD)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printReading(cmd, a, args[0], !noProgress)
		},
	}

	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "Omit completion state and streaks")
	return cmd
}

func printReading(cmd *cobra.Command, a *App, date string, withProgress bool) error {
	now := a.now()
	req := app.NewReadingRequest(date)
	req.IncludeProgress = withProgress
	req.Now = &now

	resp, err := a.Reading.ReadingFor(cmd.Context(), req)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReading(resp))
	return nil
}

func newPlanCmd(a *App) *cobra.Command {
	var year int
	var daily bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show the full-year chapter allocation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("year") {
				year = a.now().Year()
			}
			resp, err := a.Reading.PlanView(cmd.Context(), year)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPlan(resp, daily))
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "Plan year")
	cmd.Flags().BoolVar(&daily, "daily", false, "List every day instead of monthly totals")
	return cmd
}
