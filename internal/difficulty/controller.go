// Package difficulty adapts each family's level to the child's recent
// answers: a short run of correct answers moves up, a shorter run of
// misses moves down.
package difficulty

import (
	"go.uber.org/zap"

	"github.com/abhisek/sprout/internal/problem"
)

// Config holds the streak lengths and the starting level.
type Config struct {
	LevelUpStreak   int `yaml:"level_up_streak"`
	LevelDownStreak int `yaml:"level_down_streak"`
	StartingLevel   int `yaml:"starting_level"`
}

// DefaultConfig levels up after three correct answers in a row and down
// after two misses in a row, starting at level 1.
func DefaultConfig() Config {
	return Config{LevelUpStreak: 3, LevelDownStreak: 2, StartingLevel: MinLevel}
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.LevelUpStreak < 1 {
		c.LevelUpStreak = d.LevelUpStreak
	}
	if c.LevelDownStreak < 1 {
		c.LevelDownStreak = d.LevelDownStreak
	}
	if !Valid(c.StartingLevel) {
		c.StartingLevel = d.StartingLevel
	}
	return c
}

// Controller owns per-family progress. Not safe for concurrent use.
type Controller struct {
	cfg      Config
	progress map[problem.Type]*Progress
	logger   *zap.Logger
}

// NewController creates a controller. Zero or invalid config fields fall
// back to DefaultConfig.
func NewController(cfg Config, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		cfg:      cfg.normalized(),
		progress: make(map[problem.Type]*Progress),
		logger:   logger,
	}
}

// StartingLevel returns the level new families start at.
func (c *Controller) StartingLevel() int {
	return c.cfg.StartingLevel
}

func (c *Controller) get(t problem.Type) *Progress {
	if p, ok := c.progress[t]; ok {
		return p
	}
	p := &Progress{Difficulty: c.cfg.StartingLevel}
	c.progress[t] = p
	return p
}

// Progress returns a copy of t's progress, creating it on first use.
func (c *Controller) Progress(t problem.Type) Progress {
	return *c.get(t)
}

// Level returns t's current difficulty.
func (c *Controller) Level(t problem.Type) int {
	return c.get(t).Difficulty
}

// RecordAnswer applies one answer to t's streaks and counters. Returns a
// Transition when the level changed, nil otherwise.
func (c *Controller) RecordAnswer(t problem.Type, correct bool) *Transition {
	p := c.get(t)
	p.ProblemsAttempted++

	from := p.Difficulty
	if correct {
		p.ProblemsCorrect++
		p.ConsecutiveCorrect++
		p.ConsecutiveIncorrect = 0
		if p.ConsecutiveCorrect >= c.cfg.LevelUpStreak {
			p.Difficulty = min(p.Difficulty+1, MaxLevel)
			p.ConsecutiveCorrect = 0
		}
	} else {
		p.ConsecutiveIncorrect++
		p.ConsecutiveCorrect = 0
		if p.ConsecutiveIncorrect >= c.cfg.LevelDownStreak {
			p.Difficulty = max(p.Difficulty-1, MinLevel)
			p.ConsecutiveIncorrect = 0
		}
	}

	if p.Difficulty == from {
		return nil
	}
	tr := &Transition{Type: t, From: from, To: p.Difficulty, Trigger: TriggerLevelDown}
	if correct {
		tr.Trigger = TriggerLevelUp
	}
	c.logger.Info("difficulty changed",
		zap.String("family", string(t)),
		zap.Int("from", tr.From),
		zap.Int("to", tr.To),
		zap.String("trigger", string(tr.Trigger)))
	return tr
}

// SetDefaultStartingDifficulty changes the level new families start at.
// Families that have not been attempted yet move to it too; played
// families keep their level. Out-of-range levels are ignored.
func (c *Controller) SetDefaultStartingDifficulty(level int) {
	if !Valid(level) {
		return
	}
	c.cfg.StartingLevel = level
	for _, p := range c.progress {
		if p.ProblemsAttempted == 0 {
			p.Difficulty = level
		}
	}
}

// Reset returns t to a fresh state at the starting level.
func (c *Controller) Reset(t problem.Type) {
	c.progress[t] = &Progress{Difficulty: c.cfg.StartingLevel}
}

// ResetAll forgets every family.
func (c *Controller) ResetAll() {
	clear(c.progress)
}

// Snapshot returns a copy of every family's progress.
func (c *Controller) Snapshot() map[problem.Type]Progress {
	out := make(map[problem.Type]Progress, len(c.progress))
	for t, p := range c.progress {
		out[t] = *p
	}
	return out
}

// Load replaces all progress with data. Invalid fields are repaired one at
// a time rather than rejecting the entry: an out-of-range difficulty
// falls back to the starting level, negative counters become 0 and
// correct is capped at attempted. Unknown family keys are kept.
func (c *Controller) Load(data map[problem.Type]Progress) {
	c.progress = make(map[problem.Type]*Progress, len(data))
	for t, p := range data {
		if t == "" {
			continue
		}
		fixed := sanitize(p, c.cfg.StartingLevel)
		if fixed != p {
			c.logger.Warn("repaired stored progress",
				zap.String("family", string(t)),
				zap.Int("difficulty", p.Difficulty))
		}
		c.progress[t] = &fixed
	}
}

func sanitize(p Progress, starting int) Progress {
	if !Valid(p.Difficulty) {
		p.Difficulty = starting
	}
	p.ProblemsAttempted = max(p.ProblemsAttempted, 0)
	p.ProblemsCorrect = min(max(p.ProblemsCorrect, 0), p.ProblemsAttempted)
	p.ConsecutiveCorrect = max(p.ConsecutiveCorrect, 0)
	p.ConsecutiveIncorrect = max(p.ConsecutiveIncorrect, 0)
	return p
}
