package components

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sprout/internal/problem"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testProblem() *problem.Problem {
	return &problem.Problem{
		Type:   problem.TypeCounting,
		Answer: problem.NumberAnswer(3),
		Choices: []problem.Answer{
			problem.NumberAnswer(2),
			problem.NumberAnswer(3),
			problem.NumberAnswer(4),
			problem.NumberAnswer(5),
		},
	}
}

func TestMultiChoice_DigitSubmits(t *testing.T) {
	mc := NewMultiChoice(testProblem(), "en")
	assert.Equal(t, []string{"2", "3", "4", "5"}, mc.Options)
	assert.Equal(t, 1, mc.CorrectIndex)

	mc, _ = mc.Update(keyPress('2'))
	assert.True(t, mc.Submitted)
	assert.True(t, mc.IsCorrect())

	// Further keys are ignored once submitted.
	mc, _ = mc.Update(keyPress('3'))
	assert.Equal(t, 1, mc.ChosenIndex)
}

func TestMultiChoice_ArrowsAndEnter(t *testing.T) {
	mc := NewMultiChoice(testProblem(), "en")
	mc, _ = mc.Update(specialKey(tea.KeyDown))
	mc, _ = mc.Update(specialKey(tea.KeyDown))
	mc, _ = mc.Update(specialKey(tea.KeyUp))
	assert.False(t, mc.Submitted)
	assert.Equal(t, 1, mc.Selected)

	mc, _ = mc.Update(specialKey(tea.KeyEnter))
	require.True(t, mc.Submitted)
	assert.True(t, mc.IsCorrect())
}

func TestMultiChoice_WrongAndOutOfRange(t *testing.T) {
	mc := NewMultiChoice(testProblem(), "en")
	mc, _ = mc.Update(keyPress('9'))
	assert.False(t, mc.Submitted)

	mc, _ = mc.Update(keyPress('4'))
	require.True(t, mc.Submitted)
	assert.False(t, mc.IsCorrect())
	assert.Contains(t, mc.View(), "4)  5")
}

func TestMenu_SkipsDisabledAndWraps(t *testing.T) {
	var fired string
	action := func(name string) func() tea.Cmd {
		return func() tea.Cmd {
			fired = name
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		{Label: "one", Action: action("one")},
		{Label: "two", Action: action("two"), Hint: "Lv 2"},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 2, m.Selected)
	m, _ = m.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 1, m.Selected, "wraps past the disabled item")

	m, _ = m.Update(specialKey(tea.KeyUp))
	m, _ = m.Update(specialKey(tea.KeyEnter))
	assert.Equal(t, "two", fired)
	assert.Contains(t, m.View(), "Lv 2")
}

func TestRenderVisual(t *testing.T) {
	tests := []struct {
		name string
		v    problem.Visual
		want string
	}{
		{
			name: "objects wrap at five",
			v:    problem.Visual{Kind: problem.VisualObjects, Elements: []string{"a", "a", "a", "a", "a", "a"}},
			want: "a a a a a\na",
		},
		{
			name: "addition",
			v: problem.Visual{Kind: problem.VisualEquation, Operator: "+", DisplayText: "1 + 2",
				Elements: []string{"x", "x", "x"}, Split: 1},
			want: "1 + 2\n\nx  +  x x",
		},
		{
			name: "subtraction crosses out",
			v: problem.Visual{Kind: problem.VisualEquation, Operator: "-", DisplayText: "3 - 1",
				Elements: []string{"x", "x", "x"}, Split: 2},
			want: "3 - 1\n\nx x ✖",
		},
		{
			name: "comparison",
			v:    problem.Visual{Kind: problem.VisualComparison, Elements: []string{"o", "o", "o"}, Split: 1},
			want: "o\n\n   vs\n\no o",
		},
		{
			name: "word",
			v:    problem.Visual{Kind: problem.VisualWord, Elements: []string{"🍎"}, DisplayText: "apple"},
			want: "🍎  apple",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RenderVisual(tt.v))
		})
	}
}

func TestContentWidthBounds(t *testing.T) {
	assert.Equal(t, 20, ContentWidth(10))
	assert.Equal(t, 64, ContentWidth(200))
	assert.Equal(t, 54, ContentWidth(60))
}

func TestLevelBar(t *testing.T) {
	bar := LevelBar(2, 4, 24)
	assert.Equal(t, "Lv 2", bar.Label)
	assert.InDelta(t, 0.5, bar.Percent, 1e-9)
	// "Lv 2" plus two spaces leaves 18 cells.
	assert.Equal(t, 9, bar.Filled())
	assert.Equal(t, 24, lipgloss.Width(bar.View()))

	assert.Equal(t, 0, LevelBar(0, 4, 24).Filled())
	assert.Equal(t, 18, LevelBar(4, 4, 24).Filled())
	assert.Equal(t, 4, LevelBar(9, 4, 0).Filled(), "narrow bars keep a minimum width and clamp")
}
