package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprout/internal/difficulty"
	"github.com/abhisek/sprout/internal/ui/components"
	"github.com/abhisek/sprout/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	switch s.phase {
	case phaseLoading:
		return center(width, lipgloss.NewStyle().Foreground(theme.TextDim), "\n\n  Picking a problem...")
	case phaseExhausted:
		return center(width, lipgloss.NewStyle().Foreground(theme.Accent),
			"\n\n\nYou have seen every problem here for now!\n\nPress any key to finish.")
	case phaseQuitConfirm:
		return renderQuitConfirm(width)
	}
	return s.renderProblem(width)
}

func (s *PracticeScreen) renderProblem(width int) string {
	p := s.current
	var b strings.Builder

	info := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render(fmt.Sprintf("  %s  ·  level %d", p.Type.DisplayName(), p.Difficulty))
	score := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d/%d  %s %d", s.answered+1, RoundLength,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✿"), s.correct))
	line := info
	if pad := width - lipgloss.Width(info) - lipgloss.Width(score) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + score
	}
	b.WriteString(line)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.RenderVisual(p.Visual)))
	b.WriteString("\n\n")
	b.WriteString(center(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true), p.Prompt))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))

	if s.phase == phaseFeedback {
		b.WriteString("\n")
		b.WriteString(s.renderFeedback(width))
	}
	return b.String()
}

func (s *PracticeScreen) renderFeedback(width int) string {
	var b strings.Builder
	if s.lastOK {
		b.WriteString(center(width, theme.Correct, "Well done!"))
	} else {
		b.WriteString(center(width, theme.Incorrect, "Not quite"))
		b.WriteString("\n")
		b.WriteString(center(width, lipgloss.NewStyle().Foreground(theme.TextDim),
			"The answer is "+s.current.Answer.Display(s.deps.Lang())))
	}
	b.WriteString("\n")

	if tr := s.transition; tr != nil {
		b.WriteString("\n")
		b.WriteString(center(width, lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), levelMessage(tr)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(center(width, theme.Hint, "Press any key to continue..."))
	return b.String()
}

func levelMessage(tr *difficulty.Transition) string {
	if tr.Trigger == difficulty.TriggerLevelUp {
		return fmt.Sprintf("Level up! Now at level %d", tr.To)
	}
	return fmt.Sprintf("Let's take it easier: level %d", tr.To)
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center(width, lipgloss.NewStyle().Foreground(theme.Text).Bold(true), "Stop this round?"))
	b.WriteString("\n")
	b.WriteString(center(width, lipgloss.NewStyle().Foreground(theme.TextDim), "Your progress is saved."))
	b.WriteString("\n\n")
	b.WriteString(center(width, lipgloss.NewStyle().Foreground(theme.Success), "[Y] Yes, stop"))
	b.WriteString("\n")
	b.WriteString(center(width, lipgloss.NewStyle().Foreground(theme.Primary), "[N] No, keep going"))
	return b.String()
}

func center(width int, style lipgloss.Style, text string) string {
	return style.Width(width).Align(lipgloss.Center).Render(text)
}
