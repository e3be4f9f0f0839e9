package difficulty

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sprout/internal/problem"
)

const fam = problem.TypeAddition

func answer(c *Controller, seq ...bool) *Transition {
	var last *Transition
	for _, ok := range seq {
		if tr := c.RecordAnswer(fam, ok); tr != nil {
			last = tr
		}
	}
	return last
}

func TestController_LazyProgress(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	p := c.Progress(fam)
	assert.Equal(t, Progress{Difficulty: 1}, p)
	assert.Zero(t, p.Accuracy())
}

func TestController_LevelUpAfterThreeCorrect(t *testing.T) {
	c := NewController(DefaultConfig(), nil)

	assert.Nil(t, c.RecordAnswer(fam, true))
	assert.Nil(t, c.RecordAnswer(fam, true))
	tr := c.RecordAnswer(fam, true)
	require.NotNil(t, tr)
	assert.Equal(t, Transition{Type: fam, From: 1, To: 2, Trigger: TriggerLevelUp}, *tr)
	assert.Equal(t, "up", tr.Direction())

	p := c.Progress(fam)
	assert.Equal(t, 2, p.Difficulty)
	assert.Zero(t, p.ConsecutiveCorrect)
	assert.Equal(t, 3, p.ProblemsAttempted)
	assert.Equal(t, 3, p.ProblemsCorrect)
}

func TestController_InterleavedMissResetsStreak(t *testing.T) {
	c := NewController(DefaultConfig(), nil)

	assert.Nil(t, answer(c, true, true, false, true, true))
	p := c.Progress(fam)
	assert.Equal(t, 1, p.Difficulty)
	assert.Equal(t, 2, p.ConsecutiveCorrect)
	assert.Zero(t, p.ConsecutiveIncorrect)
	assert.InDelta(t, 0.8, p.Accuracy(), 1e-9)
}

func TestController_LevelDownAfterTwoMisses(t *testing.T) {
	c := NewController(Config{StartingLevel: 3}, nil)

	assert.Nil(t, c.RecordAnswer(fam, false))
	tr := c.RecordAnswer(fam, false)
	require.NotNil(t, tr)
	assert.Equal(t, TriggerLevelDown, tr.Trigger)
	assert.Equal(t, "down", tr.Direction())
	assert.Equal(t, 2, c.Level(fam))
	assert.Zero(t, c.Progress(fam).ConsecutiveIncorrect)
}

func TestController_ClampedAtBounds(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	assert.Nil(t, answer(c, false, false, false, false))
	assert.Equal(t, MinLevel, c.Level(fam))

	for range 5 {
		answer(c, true, true, true)
	}
	assert.Equal(t, MaxLevel, c.Level(fam))
	assert.Nil(t, answer(c, true, true, true), "no transition at the ceiling")
}

func TestController_RandomFeedbackStaysInBounds(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))
	c := NewController(DefaultConfig(), nil)
	for range 1000 {
		c.RecordAnswer(fam, r.IntN(3) > 0)
		lvl := c.Level(fam)
		require.GreaterOrEqual(t, lvl, MinLevel)
		require.LessOrEqual(t, lvl, MaxLevel)
	}
}

func TestController_StartingDifficultyOnlyForUnplayed(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	c.RecordAnswer(problem.TypeCounting, true)
	_ = c.Progress(problem.TypeShape) // created, never attempted

	c.SetDefaultStartingDifficulty(3)
	assert.Equal(t, 1, c.Level(problem.TypeCounting))
	assert.Equal(t, 3, c.Level(problem.TypeShape))
	assert.Equal(t, 3, c.Level(problem.TypeColor))

	c.SetDefaultStartingDifficulty(9)
	assert.Equal(t, 3, c.StartingLevel())
}

func TestController_Reset(t *testing.T) {
	c := NewController(Config{StartingLevel: 2}, nil)
	answer(c, true, true, true)
	c.RecordAnswer(problem.TypeColor, false)

	c.Reset(fam)
	assert.Equal(t, Progress{Difficulty: 2}, c.Progress(fam))
	assert.Equal(t, 1, c.Progress(problem.TypeColor).ProblemsAttempted)

	c.ResetAll()
	assert.Empty(t, c.Snapshot())
}

func TestController_LoadRepairsFields(t *testing.T) {
	c := NewController(Config{StartingLevel: 2}, nil)
	c.Load(map[problem.Type]Progress{
		problem.TypeCounting: {Difficulty: 4, ProblemsAttempted: 10, ProblemsCorrect: 7, ConsecutiveCorrect: 1},
		problem.TypeColor:    {Difficulty: 9, ProblemsAttempted: 3, ProblemsCorrect: 5},
		problem.TypeShape:    {Difficulty: 0, ProblemsAttempted: -2, ProblemsCorrect: -1, ConsecutiveIncorrect: -4},
		"future-family":      {Difficulty: 2, ProblemsAttempted: 1},
		"":                   {Difficulty: 1},
	})

	want := map[problem.Type]Progress{
		problem.TypeCounting: {Difficulty: 4, ProblemsAttempted: 10, ProblemsCorrect: 7, ConsecutiveCorrect: 1},
		problem.TypeColor:    {Difficulty: 2, ProblemsAttempted: 3, ProblemsCorrect: 3},
		problem.TypeShape:    {Difficulty: 2},
		"future-family":      {Difficulty: 2, ProblemsAttempted: 1},
	}
	if diff := cmp.Diff(want, c.Snapshot()); diff != "" {
		t.Errorf("Snapshot() mismatch (-want +got):\n%s", diff)
	}
}

func TestController_SnapshotIsCopy(t *testing.T) {
	c := NewController(DefaultConfig(), nil)
	c.RecordAnswer(fam, true)

	snap := c.Snapshot()
	p := snap[fam]
	p.Difficulty = 4
	snap[fam] = p
	assert.Equal(t, 1, c.Level(fam))
}

func TestConfig_Normalized(t *testing.T) {
	assert.Equal(t, DefaultConfig(), Config{}.normalized())
	assert.Equal(t, Config{LevelUpStreak: 5, LevelDownStreak: 2, StartingLevel: 4},
		Config{LevelUpStreak: 5, StartingLevel: 4}.normalized())
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(0))
	assert.Equal(t, 4, Clamp(5))
	assert.True(t, Valid(2))
	assert.False(t, Valid(5))
}
