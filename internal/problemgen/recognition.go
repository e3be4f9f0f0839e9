package problemgen

import (
	"github.com/abhisek/sprout/internal/locale"
	"github.com/abhisek/sprout/internal/problem"
)

// paletteSpace serves the fixed-catalogue recognition families (colors,
// shapes). The palette grows with difficulty and the signature space is
// exactly the palette.
type paletteSpace struct {
	env    Env
	all    []entry
	visual problem.VisualKind
	prompt string
}

// NewColor returns the color recognition generator.
func NewColor(env Env) Generator {
	return newFamily[entry](problem.TypeColor, env, paletteSpace{
		env: env, all: colors, visual: problem.VisualSwatch, prompt: locale.PromptColor,
	})
}

// NewShape returns the shape recognition generator.
func NewShape(env Env) Generator {
	return newFamily[entry](problem.TypeShape, env, paletteSpace{
		env: env, all: shapes, visual: problem.VisualShape, prompt: locale.PromptShape,
	})
}

func (s paletteSpace) candidates(d int) []entry { return paletteFor(s.all, d) }

func (paletteSpace) key(e entry) []string { return []string{e.ID} }

func (s paletteSpace) build(d int, e entry) problem.Problem {
	palette := paletteFor(s.all, d)
	pool := make([]problem.Answer, len(palette))
	for i, p := range palette {
		pool[i] = p.answer()
	}
	return problem.Problem{
		Visual:  problem.Visual{Kind: s.visual, Elements: []string{e.Emoji}},
		Prompt:  locale.Prompt(s.env.language(), s.prompt),
		Answer:  e.answer(),
		Choices: pickChoices(s.env.Rand, e.answer(), pool, DefaultChoiceCount),
	}
}
