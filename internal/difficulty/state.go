package difficulty

import "github.com/abhisek/sprout/internal/problem"

// Level bounds.
const (
	MinLevel = problem.MinDifficulty
	MaxLevel = problem.MaxDifficulty
)

// Clamp forces level into [MinLevel, MaxLevel].
func Clamp(level int) int {
	return problem.ClampDifficulty(level)
}

// Valid reports whether level is in range.
func Valid(level int) bool {
	return level >= MinLevel && level <= MaxLevel
}

// Progress is one family's adaptive state.
type Progress struct {
	Difficulty           int `json:"difficulty"`
	ProblemsAttempted    int `json:"problemsAttempted"`
	ProblemsCorrect      int `json:"problemsCorrect"`
	ConsecutiveCorrect   int `json:"consecutiveCorrect"`
	ConsecutiveIncorrect int `json:"consecutiveIncorrect"`
}

// Accuracy returns correct/attempted in [0, 1], or 0 before any attempt.
func (p Progress) Accuracy() float64 {
	if p.ProblemsAttempted == 0 {
		return 0
	}
	return float64(p.ProblemsCorrect) / float64(p.ProblemsAttempted)
}

// Trigger names why a level changed.
type Trigger string

const (
	TriggerLevelUp   Trigger = "level-up"
	TriggerLevelDown Trigger = "level-down"
)

// Transition records a level change for display and logging.
type Transition struct {
	Type    problem.Type
	From    int
	To      int
	Trigger Trigger
}

// Direction returns "up" or "down".
func (t Transition) Direction() string {
	if t.To > t.From {
		return "up"
	}
	return "down"
}
