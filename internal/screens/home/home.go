// Package home is the family picker the TUI opens on.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprout/internal/difficulty"
	"github.com/abhisek/sprout/internal/engine"
	"github.com/abhisek/sprout/internal/router"
	"github.com/abhisek/sprout/internal/screen"
	"github.com/abhisek/sprout/internal/screens/practice"
	"github.com/abhisek/sprout/internal/screens/profile"
	"github.com/abhisek/sprout/internal/ui/components"
	"github.com/abhisek/sprout/internal/ui/layout"
	"github.com/abhisek/sprout/internal/ui/theme"
)

const titleFull = `┏━┓┏━┓┏━┓┏━┓╻ ╻╺┳╸
┗━┓┣━┛┣┳┛┃ ┃┃ ┃ ┃
┗━┛╹  ╹┗╸┗━┛┗━┛ ╹ `

const titleCompact = "S · P · R · O · U · T"

// HomeScreen lists every family with its current level.
type HomeScreen struct {
	deps     screen.Deps
	menu     components.Menu
	stats    []engine.FamilyStats
	answered int
	correct  int
	mascot   MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ router.Refresher = (*HomeScreen)(nil)

// New creates the home screen.
func New(deps screen.Deps) *HomeScreen {
	h := &HomeScreen{deps: deps}
	h.reload()
	return h
}

// reload recomputes levels and totals after a round or a profile change.
// The menu keeps its selection.
func (h *HomeScreen) reload() {
	h.stats = h.deps.Engine.Stats()
	h.answered, h.correct = 0, 0
	top := false
	for _, s := range h.stats {
		h.answered += s.Progress.ProblemsAttempted
		h.correct += s.Progress.ProblemsCorrect
		if s.Progress.ProblemsAttempted > 0 && s.Progress.Difficulty == difficulty.MaxLevel {
			top = true
		}
	}
	switch {
	case top:
		h.mascot = MascotBlooming
	case h.answered > 0:
		h.mascot = MascotGrowing
	default:
		h.mascot = MascotSeedling
	}

	deps := h.deps
	items := make([]components.MenuItem, 0, len(h.stats)+3)
	for _, s := range h.stats {
		family := s.Type
		items = append(items, components.MenuItem{
			Label: family.DisplayName(),
			Hint:  levelHint(s),
			Action: func() tea.Cmd {
				return push(practice.New(deps, family))
			},
		})
	}
	items = append(items,
		components.MenuItem{Label: "Surprise Mix", Action: func() tea.Cmd {
			return push(practice.NewMixed(deps))
		}},
		components.MenuItem{Label: "Profile", Action: func() tea.Cmd {
			return push(profile.New(deps, popCmd))
		}},
		components.MenuItem{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
	)

	selected := h.menu.Selected
	h.menu = components.NewMenu(items)
	if selected > 0 && selected < len(items) {
		h.menu.Selected = selected
	}
}

func levelHint(s engine.FamilyStats) string {
	stars := strings.Repeat("●", s.Progress.Difficulty) + strings.Repeat("○", difficulty.MaxLevel-s.Progress.Difficulty)
	if s.Progress.ProblemsAttempted == 0 {
		return stars + "  new"
	}
	return stars
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (h *HomeScreen) Init() tea.Cmd { return nil }

// Refresh implements router.Refresher.
func (h *HomeScreen) Refresh() tea.Cmd {
	h.reload()
	return nil
}

func (h *HomeScreen) Title() string { return "Garden" }

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompact(width, height+6)
	cw := components.ContentWidth(width)

	title := lipgloss.NewStyle().Foreground(theme.Sun).Bold(true)
	var sections []string
	if compact {
		sections = append(sections, components.Centered(title.Render(titleCompact), cw))
	} else {
		sections = append(sections,
			components.Centered(title.Render(titleFull), cw),
			components.Centered(RenderMascot(h.mascot), cw))
	}

	sections = append(sections, h.renderStats(cw), components.Centered(h.menu.View(), cw))
	return components.GardenFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) renderStats(cw int) string {
	played := 0
	for _, s := range h.stats {
		if s.Progress.ProblemsAttempted > 0 {
			played++
		}
	}
	text := fmt.Sprintf("%s   %s",
		lipgloss.NewStyle().Foreground(theme.Sun).Bold(true).Render(fmt.Sprintf("✿ %d/%d correct", h.correct, h.answered)),
		lipgloss.NewStyle().Foreground(theme.Dew).Bold(true).Render(fmt.Sprintf("☘ %d/%d activities tried", played, len(h.stats))))

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Dew).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(text)
}
