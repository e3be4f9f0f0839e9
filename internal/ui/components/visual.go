package components

import (
	"strings"

	"github.com/abhisek/sprout/internal/problem"
)

// objectsPerRow keeps counting rows short enough to count at a glance.
const objectsPerRow = 5

// RenderVisual draws a problem's visual as plain text. It is shared by the
// TUI and the preview command, so it carries no styling.
func RenderVisual(v problem.Visual) string {
	switch v.Kind {
	case problem.VisualObjects:
		return rows(v.Elements)

	case problem.VisualEquation:
		split := min(max(v.Split, 0), len(v.Elements))
		var b strings.Builder
		if v.DisplayText != "" {
			b.WriteString(v.DisplayText)
			b.WriteString("\n\n")
		}
		if v.Operator == "-" {
			// Subtraction draws the minuend with the removed part crossed.
			kept := strings.Join(v.Elements[:split], " ")
			gone := make([]string, 0, len(v.Elements)-split)
			for range v.Elements[split:] {
				gone = append(gone, "✖")
			}
			b.WriteString(strings.TrimSpace(kept + " " + strings.Join(gone, " ")))
			return b.String()
		}
		b.WriteString(strings.Join(v.Elements[:split], " "))
		b.WriteString("  " + v.Operator + "  ")
		b.WriteString(strings.Join(v.Elements[split:], " "))
		return b.String()

	case problem.VisualComparison:
		split := min(max(v.Split, 0), len(v.Elements))
		return rows(v.Elements[:split]) + "\n\n   vs\n\n" + rows(v.Elements[split:])

	case problem.VisualSequence, problem.VisualGroup:
		return strings.Join(v.Elements, "  ")

	case problem.VisualWord, problem.VisualScene:
		parts := append([]string(nil), v.Elements...)
		if v.DisplayText != "" {
			parts = append(parts, v.DisplayText)
		}
		return strings.Join(parts, "  ")
	}
	return strings.Join(v.Elements, " ")
}

func rows(elems []string) string {
	var lines []string
	for start := 0; start < len(elems); start += objectsPerRow {
		end := min(start+objectsPerRow, len(elems))
		lines = append(lines, strings.Join(elems[start:end], " "))
	}
	return strings.Join(lines, "\n")
}
