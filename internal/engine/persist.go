package engine

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"

	"github.com/abhisek/sprout/internal/difficulty"
	"github.com/abhisek/sprout/internal/locale"
	"github.com/abhisek/sprout/internal/problem"
	"github.com/abhisek/sprout/internal/store"
)

// Keys of the persisted documents.
const (
	KeySeenSignatures = "seen_signatures"
	KeyProgress       = "activity_progress"
	KeyProfile        = "profile"
)

// Document shapes. A document that fails its schema is still loaded
// best-effort: the values the schema rejects are dropped, the rest kept.
var documentSchemas = map[string]string{
	KeySeenSignatures: `{
		"type": "object",
		"additionalProperties": {"type": "integer", "minimum": 1}
	}`,
	KeyProgress: `{
		"type": "object",
		"additionalProperties": {
			"type": "object",
			"properties": {
				"difficulty": {"type": "integer", "minimum": 1, "maximum": 4},
				"problemsAttempted": {"type": "integer", "minimum": 0},
				"problemsCorrect": {"type": "integer", "minimum": 0},
				"consecutiveCorrect": {"type": "integer", "minimum": 0},
				"consecutiveIncorrect": {"type": "integer", "minimum": 0}
			}
		}
	}`,
	KeyProfile: `{
		"type": "object",
		"properties": {
			"age": {"type": "integer", "minimum": 3, "maximum": 7},
			"language": {"type": "string"}
		}
	}`,
}

var compiledSchemas = sync.OnceValues(func() (map[string]*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	out := make(map[string]*jsonschema.Schema, len(documentSchemas))
	for key, def := range documentSchemas {
		var parsed any
		if err := json.Unmarshal([]byte(def), &parsed); err != nil {
			return nil, fmt.Errorf("parse schema %q: %w", key, err)
		}
		url := fmt.Sprintf("schema://sprout/%s.json", key)
		if err := c.AddResource(url, parsed); err != nil {
			return nil, fmt.Errorf("add schema %q: %w", key, err)
		}
		sch, err := c.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("compile schema %q: %w", key, err)
		}
		out[key] = sch
	}
	return out, nil
})

// profileDoc is the persisted child profile.
type profileDoc struct {
	Age      int    `json:"age"`
	Language string `json:"language"`
}

// Save writes history, progress and profile to kv. Every document is
// attempted; failures are joined.
func (e *Engine) Save(ctx context.Context, kv store.KV) error {
	seen := make(map[string]int64, e.history.Len())
	for sig, at := range e.history.Snapshot() {
		seen[string(sig)] = at.UnixMilli()
	}
	progress := make(map[string]difficulty.Progress)
	for t, p := range e.difficulty.Snapshot() {
		progress[string(t)] = p
	}
	profile := profileDoc{Age: e.age.Age(), Language: locale.Code(e.locale.Language())}

	var errs []error
	for _, doc := range []struct {
		key   string
		value any
	}{
		{KeySeenSignatures, seen},
		{KeyProgress, progress},
		{KeyProfile, profile},
	} {
		data, err := json.Marshal(doc.value)
		if err != nil {
			errs = append(errs, fmt.Errorf("encode %s: %w", doc.key, err))
			continue
		}
		if err := kv.Save(ctx, doc.key, data); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Restore loads whatever documents kv holds. Missing keys are skipped.
// A malformed document is logged and skipped without affecting the
// others. Only store failures are returned.
func (e *Engine) Restore(ctx context.Context, kv store.KV) error {
	var errs []error

	// Profile first: the age sets the starting level progress repairs to.
	for _, step := range []struct {
		key   string
		apply func(map[string]any)
	}{
		{KeyProfile, e.applyProfile},
		{KeyProgress, e.applyProgress},
		{KeySeenSignatures, e.applySeen},
	} {
		doc, err := e.loadDocument(ctx, kv, step.key)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if doc != nil {
			step.apply(doc)
		}
	}
	return errors.Join(errs...)
}

// loadDocument fetches and parses one document. Returns (nil, nil) when
// the key is absent or unusable.
func (e *Engine) loadDocument(ctx context.Context, kv store.KV, key string) (map[string]any, error) {
	raw, err := kv.Load(ctx, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		e.logger.Warn("skipping malformed document", zap.String("key", key), zap.Error(err))
		return nil, nil
	}
	doc, ok := parsed.(map[string]any)
	if !ok {
		e.logger.Warn("skipping malformed document", zap.String("key", key),
			zap.String("reason", "not an object"))
		return nil, nil
	}

	schemas, err := compiledSchemas()
	if err != nil {
		e.logger.Error("document schemas unavailable", zap.Error(err))
		return doc, nil
	}
	var verr *jsonschema.ValidationError
	if err := schemas[key].Validate(doc); errors.As(err, &verr) {
		e.logger.Warn("repairing invalid document",
			zap.String("key", key),
			zap.Strings("dropped", dropInvalid(doc, verr)))
	}
	return doc, nil
}

// dropInvalid deletes every value verr points at, so only what the
// schema accepts is hydrated. Returns the dropped JSON pointers, sorted.
func dropInvalid(doc map[string]any, verr *jsonschema.ValidationError) []string {
	var dropped []string
	var walk func(*jsonschema.ValidationError)
	walk = func(ve *jsonschema.ValidationError) {
		if len(ve.Causes) > 0 {
			for _, c := range ve.Causes {
				walk(c)
			}
			return
		}
		if deletePath(doc, ve.InstanceLocation) {
			dropped = append(dropped, "/"+strings.Join(ve.InstanceLocation, "/"))
		}
	}
	walk(verr)
	sort.Strings(dropped)
	return dropped
}

// deletePath removes the value at path. The root itself is never removed.
func deletePath(doc map[string]any, path []string) bool {
	if len(path) == 0 {
		return false
	}
	m := doc
	for _, tok := range path[:len(path)-1] {
		next, ok := m[tok].(map[string]any)
		if !ok {
			return false
		}
		m = next
	}
	last := path[len(path)-1]
	if _, ok := m[last]; !ok {
		return false
	}
	delete(m, last)
	return true
}

func (e *Engine) applySeen(doc map[string]any) {
	seen := make(map[problem.Signature]time.Time, len(doc))
	for sig, v := range doc {
		ms, ok := intValue(v)
		if !ok || ms <= 0 {
			continue
		}
		seen[problem.Signature(sig)] = time.UnixMilli(int64(ms))
	}
	e.history.Load(seen)
}

func (e *Engine) applyProgress(doc map[string]any) {
	progress := make(map[problem.Type]difficulty.Progress, len(doc))
	for family, v := range doc {
		fields, ok := v.(map[string]any)
		if !ok {
			continue
		}
		progress[problem.Type(family)] = difficulty.Progress{
			Difficulty:           intField(fields, "difficulty", 0),
			ProblemsAttempted:    intField(fields, "problemsAttempted", 0),
			ProblemsCorrect:      intField(fields, "problemsCorrect", 0),
			ConsecutiveCorrect:   intField(fields, "consecutiveCorrect", 0),
			ConsecutiveIncorrect: intField(fields, "consecutiveIncorrect", 0),
		}
	}
	e.difficulty.Load(progress)
}

func (e *Engine) applyProfile(doc map[string]any) {
	if a := intField(doc, "age", 0); a != 0 {
		e.age.SetAge(a)
	}
	if lang, ok := doc["language"].(string); ok && lang != "" {
		if err := e.locale.SetLanguage(lang); err != nil {
			e.logger.Warn("ignoring stored language", zap.String("language", lang), zap.Error(err))
		}
	}
}

// intField reads an integral JSON number, or def when the field is
// missing or not an integer.
func intField(doc map[string]any, name string, def int) int {
	v, ok := doc[name]
	if !ok {
		return def
	}
	n, ok := intValue(v)
	if !ok {
		return def
	}
	return n
}

func intValue(v any) (int, bool) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt64/2 {
		return 0, false
	}
	return int(f), true
}
