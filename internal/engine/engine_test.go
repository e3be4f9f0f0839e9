package engine

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/sprout/internal/difficulty"
	"github.com/abhisek/sprout/internal/history"
	"github.com/abhisek/sprout/internal/metrics"
	"github.com/abhisek/sprout/internal/problem"
	"github.com/abhisek/sprout/internal/store"
)

func stepClock() func() time.Time {
	now := time.UnixMilli(1_700_000_000_000)
	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(21, 22))
	}
	if opts.Clock == nil {
		opts.Clock = stepClock()
	}
	return New(opts)
}

func TestGenerateProblem_RecordsHistory(t *testing.T) {
	e := newTestEngine(t, Options{})

	p, ok := e.GenerateProblem(problem.TypeAddition, 2)
	require.True(t, ok)
	assert.Equal(t, problem.TypeAddition, p.Type)
	assert.Equal(t, 2, p.Difficulty)
	assert.Contains(t, e.SeenSignatures(), p.Signature)
}

func TestGenerateProblem_ClampsDifficulty(t *testing.T) {
	e := newTestEngine(t, Options{})

	p, ok := e.GenerateProblem(problem.TypeCounting, 9)
	require.True(t, ok)
	assert.Equal(t, 4, p.Difficulty)

	p, ok = e.GenerateProblem(problem.TypeCounting, -1)
	require.True(t, ok)
	assert.Equal(t, 1, p.Difficulty)
}

func TestGenerateProblem_UnknownFamily(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	e := newTestEngine(t, Options{Logger: zap.New(core)})

	p, ok := e.GenerateProblem("juggling", 1)
	assert.False(t, ok)
	assert.Nil(t, p)
	assert.Equal(t, 1, logs.FilterMessage("cannot generate").Len())
}

func TestGenerateProblem_NeverStalls(t *testing.T) {
	e := newTestEngine(t, Options{})

	first := make(map[problem.Signature]bool)
	for i := range 50 {
		p, ok := e.GenerateProblem(problem.TypeCounting, 1)
		require.True(t, ok, "generation %d stalled", i)
		if i < 4 {
			assert.False(t, first[p.Signature], "repeat before saturation")
			first[p.Signature] = true
		}
		assert.LessOrEqual(t, len(e.SeenSignatures()), 5)
	}
}

func TestGenerateProblem_ExhaustedWithoutEviction(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	m := metrics.New(prometheus.NewRegistry())
	e := newTestEngine(t, Options{
		Policy:  history.Policy{Threshold: 2, Fraction: 0.5},
		Logger:  zap.New(core),
		Metrics: m,
	})

	for range 3 {
		_, ok := e.GenerateProblem(problem.TypePattern, 1)
		require.True(t, ok)
	}
	_, ok := e.GenerateProblem(problem.TypePattern, 1)
	assert.False(t, ok)
	assert.Equal(t, 1, logs.FilterMessage("no unseen problem available").Len())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Exhausted.WithLabelValues("pattern", "1")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Generated.WithLabelValues("pattern", "1")))

	p, ok := e.GenerateAny(problem.TypePattern, problem.TypeColor)
	require.True(t, ok)
	assert.Equal(t, problem.TypeColor, p.Type)
}

func TestGenerateAny_DefaultsToEveryFamily(t *testing.T) {
	e := newTestEngine(t, Options{})
	p, ok := e.GenerateAny()
	require.True(t, ok)
	assert.Equal(t, problem.TypeCounting, p.Type)
}

func TestShuffleTypes_FollowsSeed(t *testing.T) {
	a := newTestEngine(t, Options{})
	b := newTestEngine(t, Options{})
	types := problem.AllTypes()
	before := append([]problem.Type(nil), types...)

	first := a.ShuffleTypes(types)
	assert.Equal(t, first, b.ShuffleTypes(types), "same seed, same order")
	assert.ElementsMatch(t, types, first)
	assert.Equal(t, before, types, "input is not reordered")
}

func TestAnswerAdaptsLevel(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	e := newTestEngine(t, Options{Metrics: m})

	var last *difficulty.Transition
	for range 3 {
		p, ok := e.NextProblem(problem.TypeSubtraction)
		require.True(t, ok)
		var correct bool
		correct, last = e.Answer(p, p.Answer)
		assert.True(t, correct)
	}
	require.NotNil(t, last)
	assert.Equal(t, 2, last.To)
	assert.Equal(t, 2, e.Level(problem.TypeSubtraction))

	p, ok := e.NextProblem(problem.TypeSubtraction)
	require.True(t, ok)
	assert.Equal(t, 2, p.Difficulty)

	wrong := p.Choices[(p.CorrectIndex()+1)%len(p.Choices)]
	correct, tr := e.Answer(p, wrong)
	assert.False(t, correct)
	assert.Nil(t, tr)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.Answers.WithLabelValues("subtraction", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Answers.WithLabelValues("subtraction", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LevelShifts.WithLabelValues("subtraction", "up")))

	correct, tr = e.Answer(nil, wrong)
	assert.False(t, correct)
	assert.Nil(t, tr)
}

func TestAgeDrivesStartingLevelAndNumberCap(t *testing.T) {
	e := newTestEngine(t, Options{})
	e.RecordAnswer(true, problem.TypeCounting)

	assert.False(t, e.SetAge(12))
	require.True(t, e.SetAge(7))
	assert.Equal(t, 7, e.Age())
	assert.Equal(t, 1, e.Level(problem.TypeCounting), "played family keeps its level")
	assert.Equal(t, 3, e.Level(problem.TypeShape))

	require.True(t, e.SetAge(3))
	sigs, err := e.AllSignatures(problem.TypeCounting, 4)
	require.NoError(t, err)
	assert.Len(t, sigs, 5)
}

func TestLanguageSwitch(t *testing.T) {
	e := newTestEngine(t, Options{})
	require.NoError(t, e.SetLanguage("de"))

	p, ok := e.GenerateProblem(problem.TypeWords, 1)
	require.True(t, ok)
	assert.Contains(t, p.Prompt, "Buchstaben")
	assert.Error(t, e.SetLanguage("!!"))
}

func TestEnginesAreIndependent(t *testing.T) {
	a := newTestEngine(t, Options{})
	b := newTestEngine(t, Options{})

	_, ok := a.GenerateProblem(problem.TypeColor, 1)
	require.True(t, ok)
	a.RecordAnswer(true, problem.TypeColor)

	assert.Len(t, a.SeenSignatures(), 1)
	assert.Empty(t, b.SeenSignatures())
	assert.Empty(t, b.ProgressSnapshot())
}

func TestResets(t *testing.T) {
	e := newTestEngine(t, Options{})
	_, ok := e.GenerateProblem(problem.TypeColor, 1)
	require.True(t, ok)
	e.RecordAnswer(false, problem.TypeColor)

	e.ResetHistory()
	assert.Empty(t, e.SeenSignatures())
	assert.NotEmpty(t, e.ProgressSnapshot())

	e.ResetProgress()
	assert.Empty(t, e.ProgressSnapshot())
}

func TestStats(t *testing.T) {
	e := newTestEngine(t, Options{})
	for range 2 {
		_, ok := e.GenerateProblem(problem.TypeShape, 1)
		require.True(t, ok)
	}

	stats := e.Stats()
	require.Len(t, stats, len(problem.AllTypes()))
	for _, s := range stats {
		if s.Type != problem.TypeShape {
			continue
		}
		assert.Equal(t, 2, s.Seen)
		assert.Equal(t, 3, s.Total)
		assert.InDelta(t, 2.0/3.0, s.Saturation(), 1e-9)
	}
	assert.Empty(t, e.ProgressSnapshot(), "stats must not create progress")
}

func TestPreviewLeavesStateAlone(t *testing.T) {
	e := newTestEngine(t, Options{})
	p, err := e.Preview(problem.TypeEmotions, 2)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Empty(t, e.SeenSignatures())

	_, err = e.Preview("juggling", 1)
	assert.Error(t, err)
}

func TestSaveRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()

	src := newTestEngine(t, Options{})
	require.True(t, src.SetAge(5))
	require.NoError(t, src.SetLanguage("es"))
	for range 4 {
		_, ok := src.GenerateProblem(problem.TypeAddition, 1)
		require.True(t, ok)
	}
	src.RecordAnswer(true, problem.TypeAddition)
	src.RecordAnswer(false, problem.TypeMatching)
	require.NoError(t, src.Save(ctx, kv))
	assert.Equal(t, []string{KeyProgress, KeyProfile, KeySeenSignatures}, kv.Keys())

	dst := newTestEngine(t, Options{})
	require.NoError(t, dst.Restore(ctx, kv))

	if diff := cmp.Diff(src.SeenSignatures(), dst.SeenSignatures()); diff != "" {
		t.Errorf("seen mismatch (-src +dst):\n%s", diff)
	}
	if diff := cmp.Diff(src.ProgressSnapshot(), dst.ProgressSnapshot()); diff != "" {
		t.Errorf("progress mismatch (-src +dst):\n%s", diff)
	}
	assert.Equal(t, 5, dst.Age())
	assert.Equal(t, "es", dst.Language().String())
}

func TestRestore_EmptyStore(t *testing.T) {
	e := newTestEngine(t, Options{})
	require.NoError(t, e.Restore(context.Background(), store.NewMemoryKV()))
	assert.Empty(t, e.SeenSignatures())
}

func TestRestore_BestEffort(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Save(ctx, KeySeenSignatures, []byte(`{"counting:d1:1": 1700000000000, "counting:d1:2": "yesterday", "counting:d1:3": -5}`)))
	require.NoError(t, kv.Save(ctx, KeyProgress, []byte(`{
		"counting": {"difficulty": 9, "problemsAttempted": 3, "problemsCorrect": "x"},
		"color": 5,
		"shape": {"difficulty": 3, "problemsAttempted": 2, "problemsCorrect": 1}
	}`)))
	require.NoError(t, kv.Save(ctx, KeyProfile, []byte(`{"age": 5, "language": "de"}`)))

	core, logs := observer.New(zap.WarnLevel)
	e := newTestEngine(t, Options{Logger: zap.New(core)})
	require.NoError(t, e.Restore(ctx, kv))

	assert.Equal(t, map[problem.Signature]time.Time{
		"counting:d1:1": time.UnixMilli(1_700_000_000_000),
	}, e.SeenSignatures())

	want := map[problem.Type]difficulty.Progress{
		problem.TypeCounting: {Difficulty: 2, ProblemsAttempted: 3},
		problem.TypeShape:    {Difficulty: 3, ProblemsAttempted: 2, ProblemsCorrect: 1},
	}
	if diff := cmp.Diff(want, e.ProgressSnapshot()); diff != "" {
		t.Errorf("progress mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "de", e.Language().String())
	assert.Equal(t, 2, logs.FilterMessage("repairing invalid document").Len())
}

func TestDropInvalid_RemovesRejectedValues(t *testing.T) {
	schemas, err := compiledSchemas()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(`{
		"counting": {"difficulty": 9, "problemsAttempted": 3, "problemsCorrect": "x"},
		"color": 5,
		"shape": {"difficulty": 3, "problemsAttempted": 2}
	}`), &doc))

	var verr *jsonschema.ValidationError
	require.ErrorAs(t, schemas[KeyProgress].Validate(doc), &verr)

	dropped := dropInvalid(doc, verr)
	assert.Equal(t, []string{"/color", "/counting/difficulty", "/counting/problemsCorrect"}, dropped)
	assert.Equal(t, map[string]any{
		"counting": map[string]any{"problemsAttempted": float64(3)},
		"shape":    map[string]any{"difficulty": float64(3), "problemsAttempted": float64(2)},
	}, doc)
	assert.NoError(t, schemas[KeyProgress].Validate(doc), "what is left passes")
}

func TestRestore_ProfileOutsideSchemaIgnored(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Save(ctx, KeyProfile, []byte(`{"age": 12, "language": "es"}`)))

	core, logs := observer.New(zap.WarnLevel)
	e := newTestEngine(t, Options{Logger: zap.New(core)})
	require.True(t, e.SetAge(4))
	require.NoError(t, e.Restore(ctx, kv))

	assert.Equal(t, 4, e.Age())
	assert.Equal(t, "es", e.Language().String())
	entries := logs.FilterMessage("repairing invalid document").All()
	require.Len(t, entries, 1)
	assert.Equal(t, []any{"/age"}, entries[0].ContextMap()["dropped"])
}

func TestRestore_MalformedDocumentSkipped(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Save(ctx, KeySeenSignatures, []byte(`not json`)))
	require.NoError(t, kv.Save(ctx, KeyProgress, []byte(`[1, 2]`)))
	require.NoError(t, kv.Save(ctx, KeyProfile, []byte(`{"age": 4}`)))

	core, logs := observer.New(zap.WarnLevel)
	e := newTestEngine(t, Options{Logger: zap.New(core)})
	require.NoError(t, e.Restore(ctx, kv))

	assert.Equal(t, 4, e.Age())
	assert.Empty(t, e.SeenSignatures())
	assert.Equal(t, 2, logs.FilterMessage("skipping malformed document").Len())
}

// failingKV fails every call.
type failingKV struct{ err error }

func (f failingKV) Load(context.Context, string) ([]byte, error) { return nil, f.err }
func (f failingKV) Save(context.Context, string, []byte) error   { return f.err }
func (f failingKV) Delete(context.Context, string) error         { return f.err }

func TestSaveRestore_StoreErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	e := newTestEngine(t, Options{})

	err := e.Save(context.Background(), failingKV{boom})
	assert.ErrorIs(t, err, boom)

	err = e.Restore(context.Background(), failingKV{boom})
	assert.ErrorIs(t, err, boom)
}

func TestSaveRestore_SQLiteStore(t *testing.T) {
	ctx := context.Background()
	s, err := store.Open(t.TempDir() + "/engine.db")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	src := newTestEngine(t, Options{})
	_, ok := src.GenerateProblem(problem.TypeSequence, 3)
	require.True(t, ok)
	src.RecordAnswer(true, problem.TypeSequence)
	require.NoError(t, src.Save(ctx, s))

	dst := newTestEngine(t, Options{})
	require.NoError(t, dst.Restore(ctx, s))
	assert.Equal(t, src.SeenSignatures(), dst.SeenSignatures())
	assert.Equal(t, src.ProgressSnapshot(), dst.ProgressSnapshot())
}
