package problemgen

import (
	"errors"
	"fmt"

	"github.com/abhisek/sprout/internal/problem"
)

// ErrUnknownType is returned when no generator serves a family.
var ErrUnknownType = errors.New("unknown problem type")

// Registry maps each family to its generator.
type Registry struct {
	gens  map[problem.Type]Generator
	order []problem.Type
}

// NewRegistry returns a registry with every built-in family registered
// against env.
func NewRegistry(env Env) *Registry {
	if env.Rand == nil {
		env = withRand(env)
	}
	r := &Registry{gens: make(map[problem.Type]Generator)}
	for _, g := range []Generator{
		NewCounting(env),
		NewAddition(env),
		NewSubtraction(env),
		NewComparison(env),
		NewPattern(env),
		NewSequence(env),
		NewColor(env),
		NewShape(env),
		NewOddOneOut(env),
		NewMatching(env),
		NewSorting(env),
		NewLetters(env),
		NewWords(env),
		NewSyllables(env),
		NewEmotions(env),
	} {
		r.Register(g)
	}
	return r
}

// withRand fills in a random source so every family shares one stream.
func withRand(env Env) Env {
	env.Rand = DefaultEnv().Rand
	return env
}

// Register adds or replaces the generator for g.Type().
func (r *Registry) Register(g Generator) {
	t := g.Type()
	if _, ok := r.gens[t]; !ok {
		r.order = append(r.order, t)
	}
	r.gens[t] = g
}

// Get returns the generator for t.
func (r *Registry) Get(t problem.Type) (Generator, error) {
	g, ok := r.gens[t]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	return g, nil
}

// Types lists registered families in registration order.
func (r *Registry) Types() []problem.Type {
	return append([]problem.Type(nil), r.order...)
}
