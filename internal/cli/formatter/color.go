package formatter

import (
	"strings"

	"github.com/alexanderramin/lectio/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Palette shared by the formatter and the huh theme.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
)

var paceLabels = map[domain.PaceLevel]string{
	domain.PaceOnTrack:  "ON PACE",
	domain.PaceSlipping: "SLIPPING",
	domain.PaceBehind:   "BEHIND",
}

// PaceColor returns the style for a pace level.
func PaceColor(level domain.PaceLevel) lipgloss.Style {
	switch level {
	case domain.PaceBehind:
		return StyleRed
	case domain.PaceSlipping:
		return StyleYellow
	case domain.PaceOnTrack:
		return StyleGreen
	default:
		return StyleDim
	}
}

// PaceIndicator returns a colored pace label such as "● BEHIND".
func PaceIndicator(level domain.PaceLevel) string {
	label, ok := paceLabels[level]
	if !ok {
		label = "UNKNOWN"
	}
	return PaceColor(level).Render("● " + label)
}

// Check renders a completion mark for a chapter.
func Check(done bool) string {
	if done {
		return StyleGreen.Render("✔")
	}
	return StyleDim.Render("○")
}

// Header upper-cases text and underlines it to its display width.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return StyleHeader.Render(upper) + "\n" + StyleDim.Render(line)
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleFg.Bold(true).Render(text)
}
