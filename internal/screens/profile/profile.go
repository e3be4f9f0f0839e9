// Package profile asks for the child's age and language. It runs on
// first launch and from the home menu.
package profile

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/sprout/internal/age"
	"github.com/abhisek/sprout/internal/screen"
	"github.com/abhisek/sprout/internal/ui/components"
	"github.com/abhisek/sprout/internal/ui/layout"
	"github.com/abhisek/sprout/internal/ui/theme"
)

// Language is a selectable display language.
type Language struct {
	Code string
	Name string
}

// Languages offered in the picker.
var Languages = []Language{
	{Code: "en", Name: "English"},
	{Code: "de", Name: "Deutsch"},
	{Code: "es", Name: "Español"},
}

type step int

const (
	stepAge step = iota
	stepLanguage
)

// ageChosenMsg and languageChosenMsg are emitted by the menu actions.
type ageChosenMsg int
type languageChosenMsg string

// ProfileScreen walks through age then language.
type ProfileScreen struct {
	deps   screen.Deps
	onDone func() tea.Cmd
	step   step
	ages   components.Menu
	langs  components.Menu
}

var _ screen.Screen = (*ProfileScreen)(nil)
var _ screen.KeyHintProvider = (*ProfileScreen)(nil)

// New creates a ProfileScreen. onDone produces the navigation command run
// once both answers are saved.
func New(deps screen.Deps, onDone func() tea.Cmd) *ProfileScreen {
	ageItems := make([]components.MenuItem, 0, age.MaxAge-age.MinAge+1)
	for a := age.MinAge; a <= age.MaxAge; a++ {
		ageItems = append(ageItems, components.MenuItem{
			Label: fmt.Sprintf("%d years", a),
			Action: func() tea.Cmd {
				return func() tea.Msg { return ageChosenMsg(a) }
			},
		})
	}
	ages := components.NewMenu(ageItems)
	if cur := deps.Engine.Age(); age.Valid(cur) {
		ages.Selected = cur - age.MinAge
	}

	langItems := make([]components.MenuItem, 0, len(Languages))
	for _, l := range Languages {
		langItems = append(langItems, components.MenuItem{
			Label: l.Name,
			Action: func() tea.Cmd {
				return func() tea.Msg { return languageChosenMsg(l.Code) }
			},
		})
	}
	langs := components.NewMenu(langItems)
	for i, l := range Languages {
		if l.Code == deps.Lang() {
			langs.Selected = i
		}
	}

	return &ProfileScreen{
		deps:   deps,
		onDone: onDone,
		ages:   ages,
		langs:  langs,
	}
}

func (p *ProfileScreen) Init() tea.Cmd { return nil }

func (p *ProfileScreen) Title() string { return "About You" }

func (p *ProfileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "OK"},
	}
}

func (p *ProfileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case ageChosenMsg:
		p.deps.Engine.SetAge(int(msg))
		p.step = stepLanguage
		return p, nil

	case languageChosenMsg:
		if err := p.deps.Engine.SetLanguage(string(msg)); err != nil {
			return p, nil
		}
		p.deps.Save(context.Background())
		return p, p.onDone()

	case tea.KeyMsg:
		var cmd tea.Cmd
		if p.step == stepAge {
			p.ages, cmd = p.ages.Update(msg)
		} else {
			p.langs, cmd = p.langs.Update(msg)
		}
		return p, cmd
	}
	return p, nil
}

func (p *ProfileScreen) View(width, height int) string {
	question, menu := "How old are you?", p.ages.View()
	if p.step == stepLanguage {
		question, menu = "Which language do you speak?", p.langs.View()
	}

	cw := components.ContentWidth(width)
	sections := []string{
		components.Centered(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("🌱"), cw),
		components.Centered(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(question), cw),
		components.Card(menu, cw),
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n\n"))
}
