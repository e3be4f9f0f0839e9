// Package practice is the screen where the child answers problems of one
// family, or of a shuffled mix, while the engine adapts the level.
package practice

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/sprout/internal/difficulty"
	"github.com/abhisek/sprout/internal/problem"
	"github.com/abhisek/sprout/internal/router"
	"github.com/abhisek/sprout/internal/screen"
	"github.com/abhisek/sprout/internal/screens/summary"
	"github.com/abhisek/sprout/internal/ui/components"
	"github.com/abhisek/sprout/internal/ui/layout"
)

// RoundLength is the number of problems in one round.
const RoundLength = 10

type phase int

const (
	phaseLoading phase = iota
	phaseAsking
	phaseFeedback
	phaseQuitConfirm
	phaseExhausted
)

// PracticeScreen implements screen.Screen for a practice round.
type PracticeScreen struct {
	deps     screen.Deps
	families []problem.Type
	mixed    bool

	phase      phase
	prevPhase  phase
	current    *problem.Problem
	choice     components.MultiChoice
	lastOK     bool
	transition *difficulty.Transition

	answered  int
	correct   int
	levelsIn  map[problem.Type]int
	startedAt time.Time
	now       func() time.Time
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)
var _ screen.EscapeHandler = (*PracticeScreen)(nil)

// New starts a round for one family.
func New(deps screen.Deps, family problem.Type) *PracticeScreen {
	return newScreen(deps, []problem.Type{family}, false)
}

// NewMixed starts a round drawing from every family in random order.
func NewMixed(deps screen.Deps) *PracticeScreen {
	return newScreen(deps, deps.Engine.Types(), true)
}

func newScreen(deps screen.Deps, families []problem.Type, mixed bool) *PracticeScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	levels := make(map[problem.Type]int, len(families))
	for _, t := range families {
		levels[t] = deps.Engine.Level(t)
	}
	return &PracticeScreen{
		deps:     deps,
		families: families,
		mixed:    mixed,
		levelsIn: levels,
		now:      time.Now,
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	s.startedAt = s.now()
	return s.nextProblem()
}

// HandlesEscape implements screen.EscapeHandler: esc asks before
// leaving a round.
func (s *PracticeScreen) HandlesEscape() {}

func (s *PracticeScreen) Title() string {
	if s.mixed {
		return "Surprise Mix"
	}
	return s.families[0].DisplayName()
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Stop"},
			{Key: "N", Description: "Keep going"},
		}
	case phaseFeedback, phaseExhausted:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Pick"},
		{Key: "Esc", Description: "Stop"},
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case problemReadyMsg:
		return s.handleProblem(msg)
	case feedbackDoneMsg:
		return s.handleFeedbackDone()
	case roundEndMsg:
		return s, s.endRound()
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// nextProblem asks the engine for the next problem at the adaptive level.
// Mixed rounds shuffle the family order every time so the first family
// does not dominate. The engine is not safe for concurrent use, so it is
// only ever called from Update and commands just deliver the result.
func (s *PracticeScreen) nextProblem() tea.Cmd {
	families := s.families
	if s.mixed {
		families = s.deps.Engine.ShuffleTypes(families)
	}
	p, _ := s.deps.Engine.GenerateAny(families...)
	return func() tea.Msg { return problemReadyMsg{Problem: p} }
}

func (s *PracticeScreen) handleProblem(msg problemReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Problem == nil {
		s.deps.Logger.Warn("practice round ran out of problems",
			zap.Int("answered", s.answered))
		s.phase = phaseExhausted
		return s, nil
	}
	s.current = msg.Problem
	s.choice = components.NewMultiChoice(msg.Problem, s.deps.Lang())
	s.transition = nil
	s.phase = phaseAsking
	return s, nil
}

func (s *PracticeScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	if s.answered >= RoundLength {
		return s, func() tea.Msg { return roundEndMsg{} }
	}
	s.phase = phaseLoading
	return s, s.nextProblem()
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.phase {
	case phaseExhausted:
		return s, func() tea.Msg { return roundEndMsg{} }

	case phaseQuitConfirm:
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return roundEndMsg{} }
		case "n", "N", "esc":
			s.phase = s.prevPhase
		}
		return s, nil

	case phaseFeedback:
		if key == "esc" {
			s.askQuit()
			return s, nil
		}
		return s, func() tea.Msg { return feedbackDoneMsg{} }

	case phaseAsking:
		if key == "esc" {
			s.askQuit()
			return s, nil
		}
		s.choice, _ = s.choice.Update(msg)
		if s.choice.Submitted {
			return s, s.submitAnswer()
		}
	}
	return s, nil
}

func (s *PracticeScreen) askQuit() {
	s.prevPhase = s.phase
	s.phase = phaseQuitConfirm
}

// submitAnswer records the chosen answer and shows feedback.
func (s *PracticeScreen) submitAnswer() tea.Cmd {
	p := s.current
	idx := s.choice.ChosenIndex
	if p == nil || idx < 0 || idx >= len(p.Choices) {
		return nil
	}

	ok, tr := s.deps.Engine.Answer(p, p.Choices[idx])
	s.answered++
	if ok {
		s.correct++
	}
	s.lastOK = ok
	s.transition = tr
	s.phase = phaseFeedback

	s.deps.Save(context.Background())
	return nil
}

// endRound builds the summary and swaps it in for this screen.
func (s *PracticeScreen) endRound() tea.Cmd {
	res := summary.Result{
		Answered: s.answered,
		Correct:  s.correct,
		Duration: s.now().Sub(s.startedAt),
	}
	for _, t := range s.families {
		before, after := s.levelsIn[t], s.deps.Engine.Level(t)
		if s.mixed && before == after {
			continue
		}
		res.Families = append(res.Families, summary.FamilyResult{
			Type:        t,
			LevelBefore: before,
			LevelAfter:  after,
		})
	}
	s.deps.Logger.Info("practice round finished",
		zap.String("mode", s.Title()),
		zap.Int("answered", res.Answered),
		zap.Int("correct", res.Correct))

	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(res)}
	}
}
