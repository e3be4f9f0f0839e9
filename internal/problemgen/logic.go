package problemgen

import (
	"github.com/abhisek/sprout/internal/locale"
	"github.com/abhisek/sprout/internal/problem"
)

// Distractor pooling: categories and pairs are scoped to one difficulty,
// but odd items, decoy partners and decoy categories are drawn from the
// catalogues of every difficulty, minus the current target.

type oddOne struct {
	Category *category
	Odd      item
}

// Odd-one-out: three members of a category plus one item from another
// category. Identity is (category, odd item); which members are shown and
// where the odd one sits is presentation.
type oddOneOutSpace struct{ env Env }

// NewOddOneOut returns the odd-one-out generator.
func NewOddOneOut(env Env) Generator {
	return newFamily[oddOne](problem.TypeOddOneOut, env, oddOneOutSpace{env})
}

func (oddOneOutSpace) candidates(d int) []oddOne {
	var out []oddOne
	for _, c := range categoriesAt(d) {
		for i := range categories {
			other := &categories[i]
			if other.ID == c.ID {
				continue
			}
			for _, m := range other.Members {
				out = append(out, oddOne{Category: c, Odd: m})
			}
		}
	}
	return out
}

func (oddOneOutSpace) key(o oddOne) []string {
	return []string{o.Category.ID, o.Odd.ID}
}

func (s oddOneOutSpace) build(_ int, o oddOne) problem.Problem {
	r := s.env.Rand
	members := append([]item(nil), o.Category.Members...)
	r.Shuffle(len(members), func(i, j int) { members[i], members[j] = members[j], members[i] })
	shown := append(members[:3:3], o.Odd)
	r.Shuffle(len(shown), func(i, j int) { shown[i], shown[j] = shown[j], shown[i] })

	elems := make([]string, len(shown))
	choices := make([]problem.Answer, len(shown))
	for i, it := range shown {
		elems[i] = it.Emoji
		choices[i] = it.answer()
	}

	return problem.Problem{
		Visual:  problem.Visual{Kind: problem.VisualGroup, Elements: elems},
		Prompt:  locale.Prompt(s.env.language(), locale.PromptOddOneOut),
		Answer:  o.Odd.answer(),
		Choices: choices,
	}
}

// Matching: what goes with an item. Identity is the item.
type matchingSpace struct{ env Env }

// NewMatching returns the matching generator.
func NewMatching(env Env) Generator {
	return newFamily[pair](problem.TypeMatching, env, matchingSpace{env})
}

func (matchingSpace) candidates(d int) []pair {
	var out []pair
	for _, p := range pairs {
		if p.Difficulty == d {
			out = append(out, p)
		}
	}
	return out
}

func (matchingSpace) key(p pair) []string { return []string{p.Item.ID} }

func (s matchingSpace) build(_ int, p pair) problem.Problem {
	pool := make([]problem.Answer, 0, len(pairs))
	for _, other := range pairs {
		if other.Partner.ID != p.Partner.ID {
			pool = append(pool, other.Partner.answer())
		}
	}
	return problem.Problem{
		Visual:  problem.Visual{Kind: problem.VisualGroup, Elements: []string{p.Item.Emoji}},
		Prompt:  locale.Prompt(s.env.language(), locale.PromptMatching, p.Item.Emoji),
		Answer:  p.Partner.answer(),
		Choices: pickChoices(s.env.Rand, p.Partner.answer(), pool, DefaultChoiceCount),
	}
}

type membership struct {
	Category *category
	Member   item
}

// sortingChoiceCount is smaller than the default: three groups fit a
// small screen better.
const sortingChoiceCount = 3

// Sorting: which group a member belongs to. Identity is (category,
// member).
type sortingSpace struct{ env Env }

// NewSorting returns the sorting generator.
func NewSorting(env Env) Generator {
	return newFamily[membership](problem.TypeSorting, env, sortingSpace{env})
}

func (sortingSpace) candidates(d int) []membership {
	var out []membership
	for _, c := range categoriesAt(d) {
		for _, m := range c.Members {
			out = append(out, membership{Category: c, Member: m})
		}
	}
	return out
}

func (sortingSpace) key(m membership) []string {
	return []string{m.Category.ID, m.Member.ID}
}

func (s sortingSpace) build(_ int, m membership) problem.Problem {
	pool := make([]problem.Answer, 0, len(categories))
	for _, c := range categories {
		if c.ID != m.Category.ID {
			pool = append(pool, c.answer())
		}
	}
	return problem.Problem{
		Visual:  problem.Visual{Kind: problem.VisualGroup, Elements: []string{m.Member.Emoji}},
		Prompt:  locale.Prompt(s.env.language(), locale.PromptSorting, m.Member.Emoji),
		Answer:  m.Category.answer(),
		Choices: pickChoices(s.env.Rand, m.Category.answer(), pool, sortingChoiceCount),
	}
}
