package cli

import (
	"fmt"

	"github.com/alexanderramin/lectio/internal/cli/formatter"
	"github.com/alexanderramin/lectio/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// lectioHuhTheme returns a huh theme using the formatter palette.
func lectioHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen).SetString("✔ ")
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim).SetString("○ ")
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// chapterOptions labels each chapter "Book N", all preselected.
func chapterOptions(chapters []domain.Chapter) []huh.Option[domain.Chapter] {
	opts := make([]huh.Option[domain.Chapter], 0, len(chapters))
	for _, ch := range chapters {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s %d", ch.Book, ch.Chapter), ch).Selected(true))
	}
	return opts
}

// pickerKeyMap lets esc cancel the picker as well as ctrl+c.
func pickerKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "cancel"))
	km.MultiSelect.SelectAll = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all"))
	return km
}

// chapterPickerForm asks which of chapters were read.
func chapterPickerForm(chapters []domain.Chapter, selected *[]domain.Chapter) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[domain.Chapter]().
				Title("Which chapters did you read?").
				Description("space toggles, enter confirms").
				Options(chapterOptions(chapters)...).
				Value(selected),
		),
	).WithTheme(lectioHuhTheme()).WithKeyMap(pickerKeyMap()).WithShowHelp(false)
}
