// Package history remembers which problem signatures were shown and when,
// and frees room for repeats once a family's signature space fills up.
package history

import (
	"maps"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/sprout/internal/metrics"
	"github.com/abhisek/sprout/internal/problem"
)

// Enumerator is the part of a generator the tracker needs: the complete
// signature space at a difficulty, plus the family it belongs to.
type Enumerator interface {
	Type() problem.Type
	AllSignatures(difficulty int) []problem.Signature
}

// Policy controls when eviction fires and how much it removes.
type Policy struct {
	// Threshold is the saturation (seen/total) at or above which eviction
	// runs.
	Threshold float64

	// Fraction of the seen entries to evict, rounded down.
	Fraction float64
}

// DefaultPolicy evicts half the seen entries once 80% of a space is seen.
func DefaultPolicy() Policy {
	return Policy{Threshold: 0.8, Fraction: 0.5}
}

// Eviction reports one saturation check.
type Eviction struct {
	Family     problem.Type
	Difficulty int
	Total      int
	Seen       int
	Saturation float64
	Evicted    []problem.Signature
}

// Fired reports whether the check removed anything.
func (e Eviction) Fired() bool { return len(e.Evicted) > 0 }

// Tracker holds one signature -> last-shown map shared by every family.
// Families are separated logically by the signature prefix. Not safe for
// concurrent use.
type Tracker struct {
	seen    map[problem.Signature]time.Time
	clock   func() time.Time
	policy  Policy
	logger  *zap.Logger
	metrics *metrics.Collectors
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock sets the time source used for RecordShown.
func WithClock(clock func() time.Time) Option {
	return func(t *Tracker) {
		t.clock = clock
	}
}

// WithPolicy overrides the eviction policy.
func WithPolicy(p Policy) Option {
	return func(t *Tracker) {
		t.policy = p
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(t *Tracker) {
		t.logger = l
	}
}

// WithMetrics sets the collectors eviction checks report to.
func WithMetrics(m *metrics.Collectors) Option {
	return func(t *Tracker) {
		t.metrics = m
	}
}

// NewTracker creates an empty tracker.
func NewTracker(opts ...Option) *Tracker {
	t := &Tracker{
		seen:   make(map[problem.Signature]time.Time),
		clock:  time.Now,
		policy: DefaultPolicy(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ExclusionSet returns a copy of every seen signature, across all
// families. Generators ignore entries outside their own namespace.
func (t *Tracker) ExclusionSet() problem.SignatureSet {
	set := make(problem.SignatureSet, len(t.seen))
	for sig := range t.seen {
		set.Add(sig)
	}
	return set
}

// RecordShown stamps sig with the current time. Showing a signature again
// overwrites its timestamp.
func (t *Tracker) RecordShown(sig problem.Signature) {
	t.seen[sig] = t.clock()
	t.metrics.SetHistorySize(len(t.seen))
}

// seenIn returns the signatures of space that are in history.
func (t *Tracker) seenIn(space []problem.Signature) []problem.Signature {
	var out []problem.Signature
	for _, sig := range space {
		if _, ok := t.seen[sig]; ok {
			out = append(out, sig)
		}
	}
	return out
}

// Saturation returns seen/total for the space at difficulty, or 0 for an
// empty space.
func (t *Tracker) Saturation(space Enumerator, difficulty int) float64 {
	all := space.AllSignatures(difficulty)
	if len(all) == 0 {
		return 0
	}
	return float64(len(t.seenIn(all))) / float64(len(all))
}

// CheckAndEvict measures saturation of one family/difficulty and, at or
// above the policy threshold, evicts the oldest floor(seen*fraction) of
// that space's entries. Entries belonging to other families or
// difficulties are never touched. Call it before every generation.
func (t *Tracker) CheckAndEvict(space Enumerator, difficulty int) Eviction {
	difficulty = problem.ClampDifficulty(difficulty)
	all := space.AllSignatures(difficulty)
	ev := Eviction{Family: space.Type(), Difficulty: difficulty, Total: len(all)}
	if ev.Total == 0 {
		return ev
	}

	seen := t.seenIn(all)
	ev.Seen = len(seen)
	ev.Saturation = float64(ev.Seen) / float64(ev.Total)
	if ev.Saturation < t.policy.Threshold {
		t.metrics.ObserveSaturation(string(ev.Family), difficulty, ev.Saturation, 0)
		return ev
	}

	n := int(float64(ev.Seen) * t.policy.Fraction)
	if n == 0 {
		t.logger.Warn("space saturated but too small to evict",
			zap.String("family", string(ev.Family)),
			zap.Int("difficulty", difficulty),
			zap.Int("seen", ev.Seen),
			zap.Int("total", ev.Total))
		t.metrics.ObserveSaturation(string(ev.Family), difficulty, ev.Saturation, 0)
		return ev
	}

	// Oldest first; ties keep whatever order the space enumerated them in.
	sort.SliceStable(seen, func(i, j int) bool {
		return t.seen[seen[i]].Before(t.seen[seen[j]])
	})
	ev.Evicted = seen[:n]
	for _, sig := range ev.Evicted {
		delete(t.seen, sig)
	}

	t.logger.Debug("evicted history",
		zap.String("family", string(ev.Family)),
		zap.Int("difficulty", difficulty),
		zap.Int("seen", ev.Seen),
		zap.Int("total", ev.Total),
		zap.Int("evicted", n))
	t.metrics.ObserveSaturation(string(ev.Family), difficulty, ev.Saturation, n)
	t.metrics.SetHistorySize(len(t.seen))
	return ev
}

// Len returns the number of signatures held.
func (t *Tracker) Len() int {
	return len(t.seen)
}

// Clear drops all history.
func (t *Tracker) Clear() {
	clear(t.seen)
	t.metrics.SetHistorySize(0)
}

// Load replaces history with snapshot. Empty signatures and zero times
// are skipped.
func (t *Tracker) Load(snapshot map[problem.Signature]time.Time) {
	t.seen = make(map[problem.Signature]time.Time, len(snapshot))
	skipped := 0
	for sig, at := range snapshot {
		if sig == "" || at.IsZero() {
			skipped++
			continue
		}
		t.seen[sig] = at
	}
	if skipped > 0 {
		t.logger.Warn("skipped invalid history entries", zap.Int("count", skipped))
	}
	t.metrics.SetHistorySize(len(t.seen))
}

// Snapshot returns a copy of history.
func (t *Tracker) Snapshot() map[problem.Signature]time.Time {
	return maps.Clone(t.seen)
}
