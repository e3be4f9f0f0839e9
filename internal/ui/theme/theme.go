package theme

import (
	"charm.land/lipgloss/v2"
)

// Garden palette: soft greens with warm highlights, readable on dark
// terminals.
var (
	Primary   = lipgloss.Color("#22C55E") // Leaf
	Secondary = lipgloss.Color("#38BDF8") // Sky
	Accent    = lipgloss.Color("#FB923C") // Marigold
	Success   = lipgloss.Color("#4ADE80") // Sprout
	Error     = lipgloss.Color("#F87171") // Berry
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0B1A12") // Soil
	BgCard    = lipgloss.Color("#14291D") // Moss
	Border    = lipgloss.Color("#2F4A3A") // Bark

	Sun = lipgloss.Color("#FACC15") // highlighted buttons, title
	Dew = lipgloss.Color("#5EEAD4") // stats bar, level badges
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)
)
