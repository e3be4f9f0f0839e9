package problemgen

import (
	"fmt"
	"strconv"

	"github.com/abhisek/sprout/internal/locale"
	"github.com/abhisek/sprout/internal/problem"
)

// numberLimits is the largest number (or sum) in play per difficulty.
var numberLimits = [problem.MaxDifficulty + 1]int{0, 5, 10, 15, 20}

// Counting: "how many?" for 1..limit objects. Identity is the count;
// which object is drawn is presentation. Age-adaptive.
type countingSpace struct{ env Env }

// NewCounting returns the counting generator.
func NewCounting(env Env) Generator {
	return newFamily[int](problem.TypeCounting, env, countingSpace{env})
}

func (s countingSpace) candidates(d int) []int {
	limit := s.env.numberCap(numberLimits[d])
	out := make([]int, 0, limit)
	for n := 1; n <= limit; n++ {
		out = append(out, n)
	}
	return out
}

func (countingSpace) key(n int) []string { return []string{strconv.Itoa(n)} }

func (s countingSpace) build(_ int, n int) problem.Problem {
	obj := pickOne(s.env.Rand, countables)
	return problem.Problem{
		Visual:  problem.Visual{Kind: problem.VisualObjects, Elements: repeat(obj, n)},
		Prompt:  locale.Prompt(s.env.language(), locale.PromptCounting),
		Answer:  problem.NumberAnswer(n),
		Choices: numberAnswers(NumericChoices(s.env.Rand, n, DefaultChoiceCount)),
	}
}

// operands is an (a, b) pair for the arithmetic families.
type operands struct{ A, B int }

// Addition: every a, b >= 1 with a+b <= limit. Identity is the ordered
// operand pair.
type additionSpace struct{ env Env }

// NewAddition returns the addition generator.
func NewAddition(env Env) Generator {
	return newFamily[operands](problem.TypeAddition, env, additionSpace{env})
}

func (additionSpace) candidates(d int) []operands {
	limit := numberLimits[d]
	var out []operands
	for a := 1; a < limit; a++ {
		for b := 1; a+b <= limit; b++ {
			out = append(out, operands{a, b})
		}
	}
	return out
}

func (additionSpace) key(o operands) []string {
	return []string{fmt.Sprintf("%d+%d", o.A, o.B)}
}

func (s additionSpace) build(_ int, o operands) problem.Problem {
	obj := pickOne(s.env.Rand, countables)
	sum := o.A + o.B
	return problem.Problem{
		Visual: problem.Visual{
			Kind:        problem.VisualEquation,
			Elements:    repeat(obj, sum),
			Operator:    "+",
			DisplayText: fmt.Sprintf("%d + %d", o.A, o.B),
			Split:       o.A,
		},
		Prompt:  locale.Prompt(s.env.language(), locale.PromptAddition, o.A, o.B),
		Answer:  problem.NumberAnswer(sum),
		Choices: numberAnswers(NumericChoices(s.env.Rand, sum, DefaultChoiceCount)),
	}
}

// Subtraction: every 1 <= b <= a <= limit.
type subtractionSpace struct{ env Env }

// NewSubtraction returns the subtraction generator.
func NewSubtraction(env Env) Generator {
	return newFamily[operands](problem.TypeSubtraction, env, subtractionSpace{env})
}

func (subtractionSpace) candidates(d int) []operands {
	limit := numberLimits[d]
	var out []operands
	for a := 1; a <= limit; a++ {
		for b := 1; b <= a; b++ {
			out = append(out, operands{a, b})
		}
	}
	return out
}

func (subtractionSpace) key(o operands) []string {
	return []string{fmt.Sprintf("%d-%d", o.A, o.B)}
}

func (s subtractionSpace) build(_ int, o operands) problem.Problem {
	obj := pickOne(s.env.Rand, countables)
	diff := o.A - o.B
	return problem.Problem{
		Visual: problem.Visual{
			Kind:        problem.VisualEquation,
			Elements:    repeat(obj, o.A),
			Operator:    "-",
			DisplayText: fmt.Sprintf("%d - %d", o.A, o.B),
			Split:       diff,
		},
		Prompt:  locale.Prompt(s.env.language(), locale.PromptSubtraction, o.A, o.B),
		Answer:  problem.NumberAnswer(diff),
		Choices: numberAnswers(NumericChoices(s.env.Rand, diff, DefaultChoiceCount)),
	}
}

// Comparison: two groups, which has more. The pair is canonicalized
// smaller-first so {3,5} and {5,3} are one problem; which side holds the
// larger group is presentation. Equal groups join from difficulty 2.
// Age-adaptive.
type comparisonSpace struct{ env Env }

// NewComparison returns the comparison generator.
func NewComparison(env Env) Generator {
	return newFamily[operands](problem.TypeComparison, env, comparisonSpace{env})
}

func (s comparisonSpace) candidates(d int) []operands {
	limit := s.env.numberCap(numberLimits[d])
	var out []operands
	for lo := 1; lo <= limit; lo++ {
		start := lo + 1
		if d >= 2 {
			start = lo
		}
		for hi := start; hi <= limit; hi++ {
			out = append(out, operands{lo, hi})
		}
	}
	return out
}

func (comparisonSpace) key(o operands) []string {
	return []string{fmt.Sprintf("%d-%d", o.A, o.B)}
}

func (s comparisonSpace) build(d int, o operands) problem.Problem {
	obj := pickOne(s.env.Rand, countables)
	left, right := o.A, o.B
	answer := problem.SideRight
	if o.A == o.B {
		answer = problem.SideEqual
	} else if s.env.Rand.IntN(2) == 0 {
		left, right = o.B, o.A
		answer = problem.SideLeft
	}

	choices := []problem.Answer{problem.SideAnswer(problem.SideLeft), problem.SideAnswer(problem.SideRight)}
	if d >= 2 {
		choices = []problem.Answer{
			problem.SideAnswer(problem.SideLeft),
			problem.SideAnswer(problem.SideEqual),
			problem.SideAnswer(problem.SideRight),
		}
	}

	return problem.Problem{
		Visual: problem.Visual{
			Kind:     problem.VisualComparison,
			Elements: append(repeat(obj, left), repeat(obj, right)...),
			Split:    left,
		},
		Prompt:  locale.Prompt(s.env.language(), locale.PromptComparison),
		Answer:  problem.SideAnswer(answer),
		Choices: choices,
	}
}
