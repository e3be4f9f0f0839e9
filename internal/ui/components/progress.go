package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprout/internal/ui/theme"
)

// ProgressBar displays a labeled horizontal bar.
type ProgressBar struct {
	Label   string
	Percent float64
	Width   int
}

// LevelBar returns a bar showing level out of maxLevel.
func LevelBar(level, maxLevel, width int) ProgressBar {
	p := 0.0
	if maxLevel > 0 {
		p = float64(level) / float64(maxLevel)
	}
	return ProgressBar{Label: fmt.Sprintf("Lv %d", level), Percent: p, Width: width}
}

// Filled returns how many cells of the bar are filled.
func (p ProgressBar) Filled() int {
	return min(max(int(float64(p.barWidth())*p.Percent), 0), p.barWidth())
}

func (p ProgressBar) label() string {
	if p.Label == "" {
		return ""
	}
	return theme.Body.Render(p.Label) + "  "
}

func (p ProgressBar) barWidth() int {
	return max(p.Width-lipgloss.Width(p.label()), 4)
}

// View renders the bar.
func (p ProgressBar) View() string {
	filled := p.Filled()
	return p.label() +
		theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", p.barWidth()-filled))
}
