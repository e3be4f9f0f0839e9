package problemgen

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/abhisek/sprout/internal/age"
	"github.com/abhisek/sprout/internal/locale"
	"github.com/abhisek/sprout/internal/problem"
)

// Generator produces problems for one family.
type Generator interface {
	// Type returns the family this generator serves.
	Type() problem.Type

	// Generate returns a problem whose signature is not in excluding.
	// Candidates are visited in random order. Returns (nil, false) when
	// every candidate at this difficulty is excluded; that is an expected
	// outcome, not an error.
	Generate(difficulty int, excluding problem.SignatureSet) (*problem.Problem, bool)

	// AllSignatures enumerates every signature Generate can produce at
	// the given difficulty. Saturation math depends on this being exact.
	AllSignatures(difficulty int) []problem.Signature
}

// Env carries the collaborators every generator reads from. The random
// source is shared and not safe for concurrent use.
type Env struct {
	Rand   *rand.Rand
	Locale locale.Signal
	Age    age.Signal
}

// DefaultEnv returns an Env with a randomly seeded source, English
// prompts and no age clamp.
func DefaultEnv() Env {
	return Env{
		Rand:   rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		Locale: locale.Fixed(language.English),
	}
}

func (e Env) language() language.Tag {
	if e.Locale == nil {
		return language.English
	}
	return e.Locale.Language()
}

// numberCap applies the age clamp to a difficulty's numeric ceiling.
func (e Env) numberCap(limit int) int {
	if e.Age == nil {
		return limit
	}
	if c, ok := e.Age.NumberCap(); ok && c < limit {
		return c
	}
	return limit
}

// space is the per-family half of a generator: the candidate universe
// at a difficulty, the identity-bearing key of each candidate, and how a
// candidate is rendered into a problem. build may randomize presentation
// but must not change what key returns.
type space[T any] interface {
	candidates(difficulty int) []T
	key(c T) []string
	build(difficulty int, c T) problem.Problem
}

// family adapts a space into a Generator. Generate and AllSignatures walk
// the same candidates, so the two can never disagree.
type family[T any] struct {
	typ   problem.Type
	env   Env
	space space[T]
}

func newFamily[T any](typ problem.Type, env Env, s space[T]) *family[T] {
	if env.Rand == nil {
		env.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &family[T]{typ: typ, env: env, space: s}
}

func (f *family[T]) Type() problem.Type { return f.typ }

func (f *family[T]) AllSignatures(difficulty int) []problem.Signature {
	difficulty = problem.ClampDifficulty(difficulty)
	cs := f.space.candidates(difficulty)
	sigs := make([]problem.Signature, len(cs))
	for i, c := range cs {
		sigs[i] = problem.NewSignature(f.typ, difficulty, f.space.key(c)...)
	}
	return sigs
}

func (f *family[T]) Generate(difficulty int, excluding problem.SignatureSet) (*problem.Problem, bool) {
	difficulty = problem.ClampDifficulty(difficulty)
	cs := f.space.candidates(difficulty)
	for _, i := range f.env.Rand.Perm(len(cs)) {
		sig := problem.NewSignature(f.typ, difficulty, f.space.key(cs[i])...)
		if excluding.Has(sig) {
			continue
		}
		p := f.space.build(difficulty, cs[i])
		p.ID = uuid.NewString()
		p.Type = f.typ
		p.Difficulty = difficulty
		p.Signature = sig
		return &p, true
	}
	return nil, false
}
