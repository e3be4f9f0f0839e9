// Package engine wires the generators, the history tracker and the
// difficulty controller into the service the application talks to.
package engine

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/abhisek/sprout/internal/age"
	"github.com/abhisek/sprout/internal/difficulty"
	"github.com/abhisek/sprout/internal/history"
	"github.com/abhisek/sprout/internal/locale"
	"github.com/abhisek/sprout/internal/metrics"
	"github.com/abhisek/sprout/internal/problem"
	"github.com/abhisek/sprout/internal/problemgen"
)

// Options configures an Engine. Every field is optional.
type Options struct {
	// Rand drives candidate order and cosmetic choices.
	Rand *rand.Rand

	// Age and Locale are the profile signals. Fresh services are created
	// when nil.
	Age    *age.Service
	Locale *locale.Service

	Difficulty difficulty.Config
	Policy     history.Policy

	// Clock stamps history entries.
	Clock func() time.Time

	Logger  *zap.Logger
	Metrics *metrics.Collectors
}

// Engine is one learner's practice state. Engines share nothing, so
// several can live in one process. Not safe for concurrent use.
type Engine struct {
	registry   *problemgen.Registry
	history    *history.Tracker
	difficulty *difficulty.Controller
	age        *age.Service
	locale     *locale.Service
	logger     *zap.Logger
	metrics    *metrics.Collectors
	rand       *rand.Rand
}

// New builds an engine from opts.
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Age == nil {
		opts.Age = age.NewService()
	}
	if opts.Locale == nil {
		opts.Locale = locale.NewService(language.English)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Policy == (history.Policy{}) {
		opts.Policy = history.DefaultPolicy()
	}

	e := &Engine{
		registry: problemgen.NewRegistry(problemgen.Env{
			Rand:   opts.Rand,
			Locale: opts.Locale,
			Age:    opts.Age,
		}),
		history: history.NewTracker(
			history.WithClock(opts.Clock),
			history.WithPolicy(opts.Policy),
			history.WithLogger(opts.Logger.Named("history")),
			history.WithMetrics(opts.Metrics),
		),
		difficulty: difficulty.NewController(opts.Difficulty, opts.Logger.Named("difficulty")),
		age:        opts.Age,
		locale:     opts.Locale,
		logger:     opts.Logger,
		metrics:    opts.Metrics,
		rand:       opts.Rand,
	}

	if lvl := age.StartingDifficulty(opts.Age.Age()); lvl != 0 {
		e.difficulty.SetDefaultStartingDifficulty(lvl)
	}
	opts.Age.OnChange(e.difficulty.SetDefaultStartingDifficulty)
	return e
}

// Types lists the families the engine can generate.
func (e *Engine) Types() []problem.Type {
	return e.registry.Types()
}

// GenerateProblem returns an unseen problem of family t at difficulty d
// (clamped to the valid range). History is checked for saturation first,
// so a full space is thinned out before generating. Returns false when t
// is unknown or nothing could be generated.
func (e *Engine) GenerateProblem(t problem.Type, d int) (*problem.Problem, bool) {
	gen, err := e.registry.Get(t)
	if err != nil {
		e.logger.Warn("cannot generate", zap.Error(err))
		return nil, false
	}
	d = problem.ClampDifficulty(d)

	e.history.CheckAndEvict(gen, d)
	p, ok := gen.Generate(d, e.history.ExclusionSet())
	if !ok {
		e.logger.Warn("no unseen problem available",
			zap.String("family", string(t)),
			zap.Int("difficulty", d))
		e.metrics.ObserveExhausted(string(t), d)
		return nil, false
	}

	e.history.RecordShown(p.Signature)
	e.metrics.ObserveGenerated(string(t), d)
	return p, true
}

// NextProblem generates for t at its current adaptive level.
func (e *Engine) NextProblem(t problem.Type) (*problem.Problem, bool) {
	return e.GenerateProblem(t, e.difficulty.Level(t))
}

// ShuffleTypes returns a shuffled copy of types drawn from the engine's
// random source, so a seeded engine repeats the same order.
func (e *Engine) ShuffleTypes(types []problem.Type) []problem.Type {
	out := append([]problem.Type(nil), types...)
	e.rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// GenerateAny tries each family in order at its adaptive level and
// returns the first problem produced. With no types, every family is
// tried.
func (e *Engine) GenerateAny(types ...problem.Type) (*problem.Problem, bool) {
	if len(types) == 0 {
		types = e.Types()
	}
	for _, t := range types {
		if p, ok := e.NextProblem(t); ok {
			return p, true
		}
	}
	return nil, false
}

// RecordAnswer feeds one answer for family t to the difficulty
// controller. Returns the level change, if any.
func (e *Engine) RecordAnswer(correct bool, t problem.Type) *difficulty.Transition {
	e.metrics.ObserveAnswer(string(t), correct)
	tr := e.difficulty.RecordAnswer(t, correct)
	if tr != nil {
		e.metrics.ObserveLevelChange(string(t), tr.Direction())
	}
	return tr
}

// Answer checks chosen against p and records the outcome.
func (e *Engine) Answer(p *problem.Problem, chosen problem.Answer) (bool, *difficulty.Transition) {
	if p == nil {
		return false, nil
	}
	correct := problem.CheckAnswer(p, chosen)
	return correct, e.RecordAnswer(correct, p.Type)
}

// Level returns t's current adaptive difficulty.
func (e *Engine) Level(t problem.Type) int {
	return e.difficulty.Level(t)
}

// Progress returns t's adaptive state.
func (e *Engine) Progress(t problem.Type) difficulty.Progress {
	return e.difficulty.Progress(t)
}

// SeenSignatures returns a copy of the history.
func (e *Engine) SeenSignatures() map[problem.Signature]time.Time {
	return e.history.Snapshot()
}

// LoadSeenSignatures replaces the history.
func (e *Engine) LoadSeenSignatures(seen map[problem.Signature]time.Time) {
	e.history.Load(seen)
}

// ProgressSnapshot returns every family's adaptive state.
func (e *Engine) ProgressSnapshot() map[problem.Type]difficulty.Progress {
	return e.difficulty.Snapshot()
}

// LoadProgress replaces adaptive state, repairing invalid fields.
func (e *Engine) LoadProgress(progress map[problem.Type]difficulty.Progress) {
	e.difficulty.Load(progress)
}

// ResetHistory forgets every shown problem.
func (e *Engine) ResetHistory() {
	e.history.Clear()
}

// ResetProgress returns every family to the starting level.
func (e *Engine) ResetProgress() {
	e.difficulty.ResetAll()
}

// SetAge updates the child's age. Unsupported ages are ignored.
func (e *Engine) SetAge(a int) bool {
	return e.age.SetAge(a)
}

// Age returns the child's age, or 0 when unset.
func (e *Engine) Age() int {
	return e.age.Age()
}

// SetLanguage switches the display language.
func (e *Engine) SetLanguage(tag string) error {
	return e.locale.SetLanguage(tag)
}

// Language returns the active display language.
func (e *Engine) Language() language.Tag {
	return e.locale.Language()
}

// FamilyStats summarizes one family for reports.
type FamilyStats struct {
	Type     problem.Type
	Progress difficulty.Progress
	Seen     int
	Total    int
}

// Saturation returns seen/total at the current level.
func (s FamilyStats) Saturation() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Seen) / float64(s.Total)
}

// Stats reports every family at its current level.
func (e *Engine) Stats() []FamilyStats {
	seen := e.history.ExclusionSet()
	progress := e.difficulty.Snapshot()
	out := make([]FamilyStats, 0, len(e.Types()))
	for _, t := range e.Types() {
		gen, err := e.registry.Get(t)
		if err != nil {
			continue
		}
		p, ok := progress[t]
		if !ok {
			p = difficulty.Progress{Difficulty: e.difficulty.StartingLevel()}
		}
		all := gen.AllSignatures(p.Difficulty)
		n := 0
		for _, sig := range all {
			if seen.Has(sig) {
				n++
			}
		}
		out = append(out, FamilyStats{Type: t, Progress: p, Seen: n, Total: len(all)})
	}
	return out
}

// Preview generates a problem without touching history or progress.
func (e *Engine) Preview(t problem.Type, d int) (*problem.Problem, error) {
	gen, err := e.registry.Get(t)
	if err != nil {
		return nil, err
	}
	p, _ := gen.Generate(d, nil)
	return p, nil
}

// AllSignatures enumerates t's space at d.
func (e *Engine) AllSignatures(t problem.Type, d int) ([]problem.Signature, error) {
	gen, err := e.registry.Get(t)
	if err != nil {
		return nil, err
	}
	return gen.AllSignatures(d), nil
}
