// Package summary shows how a practice round went.
package summary

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprout/internal/difficulty"
	"github.com/abhisek/sprout/internal/problem"
	"github.com/abhisek/sprout/internal/router"
	"github.com/abhisek/sprout/internal/screen"
	"github.com/abhisek/sprout/internal/ui/components"
	"github.com/abhisek/sprout/internal/ui/layout"
	"github.com/abhisek/sprout/internal/ui/theme"
)

// FamilyResult is one family's level movement during the round.
type FamilyResult struct {
	Type        problem.Type
	LevelBefore int
	LevelAfter  int
}

// Result is what a finished round reports.
type Result struct {
	Answered int
	Correct  int
	Duration time.Duration
	Families []FamilyResult
}

// Accuracy returns Correct/Answered, 0 for an empty round.
func (r Result) Accuracy() float64 {
	if r.Answered == 0 {
		return 0
	}
	return float64(r.Correct) / float64(r.Answered)
}

// Stars rates the round from zero to three.
func (r Result) Stars() int {
	switch a := r.Accuracy(); {
	case r.Answered == 0:
		return 0
	case a >= 0.9:
		return 3
	case a >= 0.6:
		return 2
	default:
		return 1
	}
}

const levelBarWidth = 24

// SummaryScreen displays a round's Result.
type SummaryScreen struct {
	result Result
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen.
func New(result Result) *SummaryScreen {
	return &SummaryScreen{result: result}
}

func (s *SummaryScreen) Init() tea.Cmd { return nil }

func (s *SummaryScreen) Title() string { return "Round Done" }

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "Enter", Description: "Back to the garden"}}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc", "space":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	r := s.result
	centered := func(st lipgloss.Style, text string) string {
		return st.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centered(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "Round complete!"))
	b.WriteString("\n\n")

	stars := strings.Repeat("★ ", r.Stars()) + strings.Repeat("☆ ", 3-r.Stars())
	b.WriteString(centered(lipgloss.NewStyle().Foreground(theme.Sun).Bold(true), strings.TrimSpace(stars)))
	b.WriteString("\n\n")

	mins := int(r.Duration.Minutes())
	secs := int(r.Duration.Seconds()) % 60
	b.WriteString(centered(lipgloss.NewStyle().Foreground(theme.Text),
		fmt.Sprintf("Answered: %d      Correct: %d      Time: %d:%02d", r.Answered, r.Correct, mins, secs)))
	b.WriteString("\n\n")

	if len(r.Families) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(max(width-8, 0), 48)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n")
		for _, f := range r.Families {
			line := fmt.Sprintf("%s   level %d", f.Type.DisplayName(), f.LevelAfter)
			style := lipgloss.NewStyle().Foreground(theme.Text)
			switch {
			case f.LevelAfter > f.LevelBefore:
				line = fmt.Sprintf("%s   level %d ▲ %d", f.Type.DisplayName(), f.LevelBefore, f.LevelAfter)
				style = style.Foreground(theme.Success)
			case f.LevelAfter < f.LevelBefore:
				line = fmt.Sprintf("%s   level %d ▼ %d", f.Type.DisplayName(), f.LevelBefore, f.LevelAfter)
				style = style.Foreground(theme.Accent)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
			bar := components.LevelBar(f.LevelAfter, difficulty.MaxLevel, levelBarWidth)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
			b.WriteString("\n")
		}
	}
	return b.String()
}
