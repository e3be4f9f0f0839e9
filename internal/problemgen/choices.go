package problemgen

import (
	"math/rand/v2"
	"sort"

	"github.com/abhisek/sprout/internal/problem"
)

// DefaultChoiceCount is the number of answer choices offered unless a
// family's catalogue is smaller.
const DefaultChoiceCount = 4

// NumericChoices returns count distinct non-negative integers including
// correct, sorted ascending. The nearest neighbours (±1, ±2) are tried
// first, in random order, then the search widens symmetrically. Values
// below zero are skipped.
func NumericChoices(r *rand.Rand, correct, count int) []int {
	if count < 1 {
		count = 1
	}
	seen := map[int]bool{correct: true}
	out := []int{correct}
	add := func(v int) {
		if len(out) >= count || v < 0 || seen[v] {
			return
		}
		seen[v] = true
		out = append(out, v)
	}

	near := []int{-1, 1, -2, 2}
	r.Shuffle(len(near), func(i, j int) { near[i], near[j] = near[j], near[i] })
	for _, off := range near {
		add(correct + off)
	}
	for d := 3; len(out) < count; d++ {
		pair := []int{-d, d}
		if r.IntN(2) == 0 {
			pair[0], pair[1] = pair[1], pair[0]
		}
		for _, off := range pair {
			add(correct + off)
		}
	}

	sort.Ints(out)
	return out
}

func numberAnswers(vals []int) []problem.Answer {
	out := make([]problem.Answer, len(vals))
	for i, v := range vals {
		out[i] = problem.NumberAnswer(v)
	}
	return out
}

// pickChoices returns correct plus up to count-1 decoys drawn from pool,
// in random order. Pool entries equal to correct are skipped.
func pickChoices(r *rand.Rand, correct problem.Answer, pool []problem.Answer, count int) []problem.Answer {
	decoys := make([]problem.Answer, 0, len(pool))
	for _, a := range pool {
		if a.Equal(correct) || containsAnswer(decoys, a) {
			continue
		}
		decoys = append(decoys, a)
	}
	r.Shuffle(len(decoys), func(i, j int) { decoys[i], decoys[j] = decoys[j], decoys[i] })
	if len(decoys) > count-1 {
		decoys = decoys[:count-1]
	}

	out := append([]problem.Answer{correct}, decoys...)
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func containsAnswer(list []problem.Answer, a problem.Answer) bool {
	for _, b := range list {
		if b.Equal(a) {
			return true
		}
	}
	return false
}

func pickOne[T any](r *rand.Rand, items []T) T {
	return items[r.IntN(len(items))]
}

func repeat(s string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = s
	}
	return out
}
