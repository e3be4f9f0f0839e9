package problemgen

import (
	"strconv"

	"github.com/abhisek/sprout/internal/locale"
	"github.com/abhisek/sprout/internal/problem"
)

// Pattern: a small fixed set of abstract templates per difficulty
// ("AB", "AAB", ...). The color assigned to each template letter and the
// length of the shown run change on every render; the signature is the
// template alone, so a repeated problem still looks fresh.
type patternSpace struct{ env Env }

// NewPattern returns the pattern generator.
func NewPattern(env Env) Generator {
	return newFamily[string](problem.TypePattern, env, patternSpace{env})
}

func (patternSpace) candidates(d int) []string { return patternTemplates[d] }

func (patternSpace) key(t string) []string { return []string{t} }

func (s patternSpace) build(_ int, tmpl string) problem.Problem {
	r := s.env.Rand
	palette := append([]string(nil), patternPalette...)
	r.Shuffle(len(palette), func(i, j int) { palette[i], palette[j] = palette[j], palette[i] })

	colorOf := make(map[byte]string)
	var used []string
	for i := 0; i < len(tmpl); i++ {
		if _, ok := colorOf[tmpl[i]]; !ok {
			colorOf[tmpl[i]] = palette[len(colorOf)]
			used = append(used, colorOf[tmpl[i]])
		}
	}

	// Two full repetitions, then a partial run whose last element is hidden.
	total := 2*len(tmpl) + r.IntN(len(tmpl)) + 1
	elems := make([]string, total)
	for i := range elems {
		elems[i] = colorOf[tmpl[i%len(tmpl)]]
	}
	missing := total - 1
	answer := elems[missing]
	elems[missing] = MissingMark

	pool := make([]problem.Answer, 0, len(palette))
	for _, c := range used {
		pool = append(pool, problem.PatternAnswer(c))
	}
	for _, c := range palette[len(used):] {
		pool = append(pool, problem.PatternAnswer(c))
	}
	// Decoys come from the template's own colors first, topped up from the
	// rest of the shuffled palette.
	n := DefaultChoiceCount
	if len(used) > n {
		n = len(used)
	}
	decoys := pool[:n]

	return problem.Problem{
		Visual: problem.Visual{
			Kind:         problem.VisualSequence,
			Elements:     elems,
			MissingIndex: &missing,
		},
		Prompt:  locale.Prompt(s.env.language(), locale.PromptPattern),
		Answer:  problem.PatternAnswer(answer),
		Choices: pickChoices(r, problem.PatternAnswer(answer), decoys, DefaultChoiceCount),
	}
}

const sequenceLength = 5

// sequenceSteps lists the step sizes in play per difficulty.
var sequenceSteps = map[int][]int{
	1: {1},
	2: {1, -1},
	3: {2, -2, 5},
	4: {3, -3, 10, 4},
}

// sequenceStarts is how many distinct lowest values each step gets.
var sequenceStarts = map[int]int{1: 5, 2: 10, 3: 10, 4: 10}

type progression struct{ First, Step int }

func (p progression) at(i int) int { return p.First + i*p.Step }

// Sequence: arithmetic progressions of five numbers with one hidden.
// Identity is (first value, step); which position is hidden is
// presentation.
type sequenceSpace struct{ env Env }

// NewSequence returns the number sequence generator.
func NewSequence(env Env) Generator {
	return newFamily[progression](problem.TypeSequence, env, sequenceSpace{env})
}

func (sequenceSpace) candidates(d int) []progression {
	var out []progression
	for _, step := range sequenceSteps[d] {
		for low := 1; low <= sequenceStarts[d]; low++ {
			first := low
			if step < 0 {
				first = low - step*(sequenceLength-1)
			}
			out = append(out, progression{First: first, Step: step})
		}
	}
	return out
}

func (sequenceSpace) key(p progression) []string {
	return []string{strconv.Itoa(p.First), strconv.Itoa(p.Step)}
}

func (s sequenceSpace) build(_ int, p progression) problem.Problem {
	missing := s.env.Rand.IntN(sequenceLength)
	elems := make([]string, sequenceLength)
	for i := range elems {
		elems[i] = strconv.Itoa(p.at(i))
	}
	elems[missing] = MissingMark
	answer := p.at(missing)

	return problem.Problem{
		Visual: problem.Visual{
			Kind:         problem.VisualSequence,
			Elements:     elems,
			MissingIndex: &missing,
		},
		Prompt:  locale.Prompt(s.env.language(), locale.PromptSequence),
		Answer:  problem.NumberAnswer(answer),
		Choices: numberAnswers(NumericChoices(s.env.Rand, answer, DefaultChoiceCount)),
	}
}
