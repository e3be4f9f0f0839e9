// Package app is the root bubbletea model of the practice TUI.
package app

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/sprout/internal/engine"
	"github.com/abhisek/sprout/internal/router"
	"github.com/abhisek/sprout/internal/screen"
	"github.com/abhisek/sprout/internal/screens/home"
	"github.com/abhisek/sprout/internal/screens/profile"
	"github.com/abhisek/sprout/internal/store"
	"github.com/abhisek/sprout/internal/ui/layout"
)

// Options holds the dependencies the TUI runs against.
type Options struct {
	Engine *engine.Engine
	KV     store.KV
	Logger *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	deps   screen.Deps
	router *router.Router
	width  int
	height int
}

// newAppModel opens on the home screen, or on the profile questions when
// no age is known yet.
func newAppModel(opts Options) AppModel {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	deps := screen.Deps{Engine: opts.Engine, KV: opts.KV, Logger: opts.Logger}

	var first screen.Screen
	if opts.Engine.Age() == 0 {
		first = profile.New(deps, func() tea.Cmd {
			return func() tea.Msg { return router.ReplaceScreenMsg{Screen: home.New(deps)} }
		})
	} else {
		first = home.New(deps)
	}
	return AppModel{deps: deps, router: router.New(first)}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if _, ok := m.router.Active().(screen.EscapeHandler); !ok && m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}

	return m, m.router.Update(msg)
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	header := layout.RenderHeader(active.Title(), layout.Status{
		Age:      m.deps.Engine.Age(),
		Language: m.deps.Lang(),
	}, m.width)

	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = hp.KeyHints()
	}
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the TUI and saves the engine state when it exits.
func Run(ctx context.Context, opts Options) error {
	m := newAppModel(opts)
	_, runErr := tea.NewProgram(m, tea.WithContext(ctx)).Run()

	m.deps.Save(context.WithoutCancel(ctx))
	if runErr != nil {
		return fmt.Errorf("run tui: %w", runErr)
	}
	return nil
}
