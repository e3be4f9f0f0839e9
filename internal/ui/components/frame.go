package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprout/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used by framed screens so
// their boxes line up.
func ContentWidth(frameWidth int) int {
	// Frame border (2) plus inner padding (4).
	return min(max(frameWidth-6, 20), 64)
}

// GardenFrame wraps content in a double border, centered in the given
// area.
func GardenFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded box of content width cw.
func Card(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// Centered renders s horizontally centered in width.
func Centered(s string, width int) string {
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(s)
}
