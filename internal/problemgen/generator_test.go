package problemgen

import (
	"errors"
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/abhisek/sprout/internal/locale"
	"github.com/abhisek/sprout/internal/problem"
)

func testEnv() Env {
	return Env{
		Rand:   rand.New(rand.NewPCG(1, 2)),
		Locale: locale.Fixed(language.English),
	}
}

// capSignal is a fixed age clamp; zero means no age.
type capSignal int

func (c capSignal) NumberCap() (int, bool) { return int(c), c > 0 }

func TestGenerators_EnumerationMatchesGeneration(t *testing.T) {
	reg := NewRegistry(testEnv())

	for _, typ := range reg.Types() {
		gen, err := reg.Get(typ)
		require.NoError(t, err)

		for d := problem.MinDifficulty; d <= problem.MaxDifficulty; d++ {
			t.Run(string(typ)+"/d"+strconv.Itoa(d), func(t *testing.T) {
				all := gen.AllSignatures(d)
				require.NotEmpty(t, all)

				universe := problem.NewSignatureSet(all...)
				require.Equal(t, len(all), universe.Len(), "signatures must be unique")

				seen := problem.NewSignatureSet()
				for range all {
					p, ok := gen.Generate(d, seen)
					require.True(t, ok)
					assertWellFormed(t, p, typ, d)
					assert.True(t, universe.Has(p.Signature), "generated %s outside enumeration", p.Signature)
					assert.False(t, seen.Has(p.Signature), "repeated %s before exhaustion", p.Signature)
					seen.Add(p.Signature)
				}

				p, ok := gen.Generate(d, seen)
				assert.False(t, ok)
				assert.Nil(t, p)
			})
		}
	}
}

func assertWellFormed(t *testing.T, p *problem.Problem, typ problem.Type, d int) {
	t.Helper()
	require.NotNil(t, p)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, typ, p.Type)
	assert.Equal(t, d, p.Difficulty)
	assert.Equal(t, typ, p.Signature.Family())
	assert.Equal(t, d, p.Signature.Difficulty())
	assert.NotEmpty(t, p.Prompt)
	assert.GreaterOrEqual(t, len(p.Choices), 2)

	matches := 0
	for i, c := range p.Choices {
		if c.Equal(p.Answer) {
			matches++
		}
		for _, other := range p.Choices[i+1:] {
			assert.False(t, c.Equal(other), "duplicate choice %v", c)
		}
	}
	assert.Equal(t, 1, matches, "correct answer must appear exactly once")
}

func TestGenerate_ClampsDifficulty(t *testing.T) {
	gen := NewCounting(testEnv())

	p, ok := gen.Generate(0, nil)
	require.True(t, ok)
	assert.Equal(t, 1, p.Difficulty)

	p, ok = gen.Generate(7, nil)
	require.True(t, ok)
	assert.Equal(t, 4, p.Difficulty)
	assert.Len(t, gen.AllSignatures(99), 20)
}

func TestAddition_LastRemainingSignature(t *testing.T) {
	gen := NewAddition(testEnv())
	all := gen.AllSignatures(1)
	require.Len(t, all, 10)

	last := all[len(all)-1]
	excluded := problem.NewSignatureSet(all[:len(all)-1]...)

	p, ok := gen.Generate(1, excluded)
	require.True(t, ok)
	assert.Equal(t, last, p.Signature)

	a, b, found := strings.Cut(p.Signature.Key(), "+")
	require.True(t, found)
	x, err := strconv.Atoi(a)
	require.NoError(t, err)
	y, err := strconv.Atoi(b)
	require.NoError(t, err)
	assert.Equal(t, problem.NumberAnswer(x+y), p.Answer)
	assert.LessOrEqual(t, x+y, 5)
}

func TestCounting_SpaceAndVisual(t *testing.T) {
	gen := NewCounting(testEnv())
	assert.Equal(t, []problem.Signature{
		"counting:d1:1", "counting:d1:2", "counting:d1:3", "counting:d1:4", "counting:d1:5",
	}, gen.AllSignatures(1))

	p, ok := gen.Generate(1, nil)
	require.True(t, ok)
	assert.Equal(t, problem.VisualObjects, p.Visual.Kind)
	assert.Len(t, p.Visual.Elements, p.Answer.Number)
}

func TestAgeClamp(t *testing.T) {
	env := testEnv()
	env.Age = capSignal(5)

	assert.Len(t, NewCounting(env).AllSignatures(4), 5)
	// lo < hi over 1..5.
	assert.Len(t, NewComparison(env).AllSignatures(1), 10)
	// Not age-adaptive.
	assert.Len(t, NewAddition(env).AllSignatures(4), 190)

	env.Age = capSignal(0)
	assert.Len(t, NewCounting(env).AllSignatures(4), 20)
}

func TestComparison_EqualFromDifficultyTwo(t *testing.T) {
	gen := NewComparison(testEnv())

	assert.NotContains(t, gen.AllSignatures(1), problem.Signature("comparison:d1:1-1"))
	assert.Contains(t, gen.AllSignatures(2), problem.Signature("comparison:d2:1-1"))

	p, ok := gen.Generate(1, nil)
	require.True(t, ok)
	assert.Len(t, p.Choices, 2)

	p, ok = gen.Generate(2, nil)
	require.True(t, ok)
	assert.Len(t, p.Choices, 3)
}

func TestSequence_MissingElement(t *testing.T) {
	gen := NewSequence(testEnv())
	for range 20 {
		p, ok := gen.Generate(4, nil)
		require.True(t, ok)
		require.NotNil(t, p.Visual.MissingIndex)
		idx := *p.Visual.MissingIndex
		assert.Equal(t, MissingMark, p.Visual.Elements[idx])
		assert.GreaterOrEqual(t, p.Answer.Number, 0)
	}
}

func TestPattern_HidesLastElement(t *testing.T) {
	gen := NewPattern(testEnv())
	assert.Equal(t, []problem.Signature{"pattern:d1:AB", "pattern:d1:AAB", "pattern:d1:ABB"}, gen.AllSignatures(1))

	p, ok := gen.Generate(3, nil)
	require.True(t, ok)
	require.NotNil(t, p.Visual.MissingIndex)
	assert.Equal(t, len(p.Visual.Elements)-1, *p.Visual.MissingIndex)
	assert.Len(t, p.Choices, DefaultChoiceCount)
}

func TestLanguageSwitchChangesWordSpace(t *testing.T) {
	loc := locale.NewService(language.English)
	env := testEnv()
	env.Locale = loc
	gen := NewLetters(env)

	english := problem.NewSignatureSet(gen.AllSignatures(1)...)
	assert.True(t, english.Has("letters:d1:egg"))

	require.NoError(t, loc.SetLanguage("de-AT"))
	german := problem.NewSignatureSet(gen.AllSignatures(1)...)
	assert.True(t, german.Has("letters:d1:Ei"))
	assert.False(t, german.Has("letters:d1:egg"))

	p, ok := gen.Generate(1, nil)
	require.True(t, ok)
	assert.True(t, german.Has(p.Signature))
	assert.Contains(t, p.Prompt, "Buchstaben")
}

func TestLetters_AccentedInitialsAreAnswerable(t *testing.T) {
	for _, tag := range []language.Tag{language.Spanish, language.German} {
		env := testEnv()
		env.Locale = locale.Fixed(tag)
		gen := NewLetters(env)
		alphabet := locale.Alphabet(tag)

		for d := problem.MinDifficulty; d <= problem.MaxDifficulty; d++ {
			seen := problem.NewSignatureSet()
			for range gen.AllSignatures(d) {
				p, ok := gen.Generate(d, seen)
				require.True(t, ok)
				seen.Add(p.Signature)

				assert.Contains(t, alphabet, p.Answer.Letter, "%s: answer must be a letter of the alphabet", p.Signature)
				for _, c := range p.Choices {
					if c.Equal(p.Answer) {
						continue
					}
					assert.NotEqual(t, locale.Fold(p.Answer.Letter), locale.Fold(c.Letter),
						"%s: decoy %q looks like answer %q", p.Signature, c.Letter, p.Answer.Letter)
				}
			}
		}
	}

	arbol := locale.Word{Text: "árbol"}
	assert.Equal(t, "A", arbol.FirstLetter(language.Spanish))
	assert.Equal(t, "Ñ", locale.Word{Text: "ñu"}.FirstLetter(language.Spanish))
	assert.Equal(t, "Ä", locale.Word{Text: "Äpfel"}.FirstLetter(language.German))
}

func TestWords_LengthBuckets(t *testing.T) {
	assert.Equal(t, 1, lengthBucket(2))
	assert.Equal(t, 1, lengthBucket(3))
	assert.Equal(t, 2, lengthBucket(4))
	assert.Equal(t, 3, lengthBucket(5))
	assert.Equal(t, 4, lengthBucket(13))

	gen := NewWords(testEnv())
	p, ok := gen.Generate(4, nil)
	require.True(t, ok)
	assert.GreaterOrEqual(t, p.Answer.Number, 6)
	assert.Equal(t, p.Visual.DisplayText, p.Signature.Key())
}

func TestEmotions_FallsBackToEnglishText(t *testing.T) {
	env := testEnv()
	env.Locale = locale.Fixed(language.Spanish)

	p, ok := NewEmotions(env).Generate(1, nil)
	require.True(t, ok)
	assert.Equal(t, problem.VisualScene, p.Visual.Kind)
	assert.NotEmpty(t, p.Visual.DisplayText)
	assert.Equal(t, "How would you feel?", p.Prompt)
}

func TestNumericChoices(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	for correct := 0; correct <= 25; correct++ {
		for _, count := range []int{2, 3, 4, 6} {
			got := NumericChoices(r, correct, count)
			require.Len(t, got, count)
			assert.Contains(t, got, correct)
			assert.IsIncreasing(t, got)
			assert.GreaterOrEqual(t, got[0], 0)
		}
	}
}

func TestNumericChoices_NearZero(t *testing.T) {
	got := NumericChoices(rand.New(rand.NewPCG(5, 6)), 0, 4)
	assert.Equal(t, []int{0, 1, 2, 3}, got)
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry(Env{})
	assert.Equal(t, problem.AllTypes(), reg.Types())

	_, err := reg.Get("juggling")
	assert.True(t, errors.Is(err, ErrUnknownType))

	gen, err := reg.Get(problem.TypeShape)
	require.NoError(t, err)
	assert.Equal(t, problem.TypeShape, gen.Type())
	assert.Len(t, gen.AllSignatures(4), 6)
}
