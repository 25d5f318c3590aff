package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/lectio/internal/app"
	"github.com/alexanderramin/lectio/internal/cli/formatter"
	"github.com/alexanderramin/lectio/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newMarkCmd(a *App) *cobra.Command {
	var date *dateValue
	var chapters []string
	var pick bool

	cmd := &cobra.Command{
		Use:   "mark",
		Short: "Mark chapters as read (the whole day by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.now()
			req := app.MarkCompleteRequest{Date: date.String(), Now: &now}

			for _, s := range chapters {
				ch, err := a.Corpus.ParseChapter(s)
				if err != nil {
					return err
				}
				req.Chapters = append(req.Chapters, ch)
			}

			if pick {
				if len(chapters) > 0 {
					return errors.New("--pick cannot be combined with --chapter")
				}
				if !a.interactive() {
					return errors.New("--pick needs an interactive terminal")
				}
				picked, err := pickChapters(cmd, a, date.String())
				if err != nil {
					return err
				}
				if len(picked) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Nothing selected."))
					return nil
				}
				req.Chapters = picked
			}

			res, err := a.Progress.MarkComplete(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMarkResult(res))
			return nil
		},
	}

	date = dateFlag(cmd.Flags(), "Date to mark (YYYY-MM-DD, default today)")
	cmd.Flags().StringArrayVar(&chapters, "chapter", nil, `Chapter to mark, e.g. "1 John 3" (repeatable)`)
	cmd.Flags().BoolVar(&pick, "pick", false, "Choose chapters interactively")
	return cmd
}

// pickChapters prompts for the unread chapters of date's assignment.
func pickChapters(cmd *cobra.Command, a *App, date string) ([]domain.Chapter, error) {
	now := a.now()
	req := app.NewReadingRequest(date)
	req.Now = &now
	resp, err := a.Reading.ReadingFor(cmd.Context(), req)
	if err != nil {
		return nil, err
	}

	done := map[domain.ChapterKey]bool{}
	if resp.Progress != nil {
		for _, c := range resp.Progress.Completed {
			done[c.Key()] = true
		}
	}
	var unread []domain.Chapter
	for _, ch := range resp.Chapters {
		if !done[ch.Key()] {
			unread = append(unread, ch)
		}
	}
	if len(unread) == 0 {
		return nil, nil
	}

	var selected []domain.Chapter
	if err := chapterPickerForm(unread, &selected).
		WithProgramOptions(tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.ErrOrStderr())).
		RunWithContext(cmd.Context()); err != nil {
		return nil, err
	}
	return selected, nil
}

func newUndoCmd(a *App) *cobra.Command {
	var date *dateValue

	cmd := &cobra.Command{
		Use:   "undo BOOK CHAPTER",
		Short: "Remove a chapter's completion",
		Example: `  lectio undo Genesis 3
  lectio undo --date 2025-01-04 1 John 2`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ch, err := a.Corpus.ParseChapter(strings.Join(args, " "))
			if err != nil {
				return err
			}
			now := a.now()
			res, err := a.Progress.UndoCompletion(cmd.Context(), app.UndoRequest{
				Date:    date.String(),
				Book:    ch.Book,
				Chapter: ch.Chapter,
				Now:     &now,
			})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatMarkResult(res))
			return nil
		},
	}

	date = dateFlag(cmd.Flags(), "Date of the completion (YYYY-MM-DD, default today)")
	return cmd
}

func newProgressCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "progress [DATE]",
		Short: "Show recorded progress for a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := domain.FormatDate(a.now())
			if len(args) == 1 {
				date = args[0]
			}
			view, err := a.Progress.Progress(cmd.Context(), date)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProgressView(view))
			return nil
		},
	}
}

func newRangeCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "range START END",
		Short: "Show per-day completion between two dates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := a.Progress.Range(cmd.Context(), app.RangeRequest{Start: args[0], End: args[1]})
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatRange(days))
			return nil
		},
	}
}
