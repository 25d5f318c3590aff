package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%. pct is a
// fraction in [0, 1].
func RenderProgress(pct float64, width int) string {
	pct, filled, empty := barCells(pct, width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)
	return fmt.Sprintf("[%s] %3.0f%%", progressStyle(pct).Render(bar), pct*100)
}

// RenderCompactBar renders the bar alone, without brackets or a label.
// Dimmed bars are left unstyled.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct, filled, empty := barCells(pct, width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, empty)
	if dim {
		return bar
	}
	return progressStyle(pct).Render(bar)
}

func barCells(pct float64, width int) (float64, int, int) {
	pct = max(0, min(1, pct))
	width = max(2, width)
	filled := min(width, int(pct*float64(width)))
	return pct, filled, width - filled
}

func progressStyle(pct float64) lipgloss.Style {
	switch {
	case pct < 0.33:
		return StyleRed
	case pct < 0.66:
		return StyleYellow
	default:
		return StyleGreen
	}
}
