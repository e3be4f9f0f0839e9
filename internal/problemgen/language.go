package problemgen

import (
	"github.com/abhisek/sprout/internal/locale"
	"github.com/abhisek/sprout/internal/problem"
)

// The word families draw from the active display language's word bank.
// The language is read on every call, by candidates and build alike, so
// enumeration always matches what generation would pick from. A word's
// bucket can differ between languages (word length especially).

// wordsWhere filters the active language's bank.
func wordsWhere(env Env, keep func(locale.Word) bool) []locale.Word {
	var out []locale.Word
	for _, w := range locale.Words(env.language()) {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}

// Letters: which letter a pictured word starts with. Difficulty follows
// the first letter's class: vowels, common consonants, other consonants,
// rare consonants.
type lettersSpace struct{ env Env }

// NewLetters returns the first-letter generator.
func NewLetters(env Env) Generator {
	return newFamily[locale.Word](problem.TypeLetters, env, lettersSpace{env})
}

func (s lettersSpace) candidates(d int) []locale.Word {
	lang := s.env.language()
	return wordsWhere(s.env, func(w locale.Word) bool {
		return int(locale.ClassOf(w.FirstLetter(lang))) == d
	})
}

func (lettersSpace) key(w locale.Word) []string { return []string{w.Text} }

func (s lettersSpace) build(_ int, w locale.Word) problem.Problem {
	lang := s.env.language()
	letter := w.FirstLetter(lang)
	// Decoys that look like the answer without their marks ("A" for
	// "Ä") would be marked wrong for a reasonable pick.
	pool := make([]problem.Answer, 0, len(locale.Alphabet(lang)))
	for _, l := range locale.Alphabet(lang) {
		if l != letter && locale.Fold(l) == locale.Fold(letter) {
			continue
		}
		pool = append(pool, problem.LetterAnswer(l))
	}
	return problem.Problem{
		Visual:  problem.Visual{Kind: problem.VisualWord, Elements: []string{w.Emoji}},
		Prompt:  locale.Prompt(lang, locale.PromptLetters, w.Emoji),
		Answer:  problem.LetterAnswer(letter),
		Choices: pickChoices(s.env.Rand, problem.LetterAnswer(letter), pool, DefaultChoiceCount),
	}
}

// lengthBucket maps a word length onto a difficulty: <=3, 4, 5, >=6.
func lengthBucket(n int) int {
	switch {
	case n <= 3:
		return 1
	case n == 4:
		return 2
	case n == 5:
		return 3
	default:
		return 4
	}
}

// Words: how many letters a word has.
type wordsSpace struct{ env Env }

// NewWords returns the word-length generator.
func NewWords(env Env) Generator {
	return newFamily[locale.Word](problem.TypeWords, env, wordsSpace{env})
}

func (s wordsSpace) candidates(d int) []locale.Word {
	return wordsWhere(s.env, func(w locale.Word) bool {
		return lengthBucket(w.Length()) == d
	})
}

func (wordsSpace) key(w locale.Word) []string { return []string{w.Text} }

func (s wordsSpace) build(_ int, w locale.Word) problem.Problem {
	n := w.Length()
	return problem.Problem{
		Visual: problem.Visual{
			Kind:        problem.VisualWord,
			Elements:    []string{w.Emoji},
			DisplayText: w.Text,
		},
		Prompt:  locale.Prompt(s.env.language(), locale.PromptWords, w.Text),
		Answer:  problem.NumberAnswer(n),
		Choices: numberAnswers(NumericChoices(s.env.Rand, n, DefaultChoiceCount)),
	}
}

// syllableBands are the inclusive syllable ranges per difficulty. Bands
// overlap so the answer is never implied by the difficulty alone.
var syllableBands = map[int][2]int{
	1: {1, 2},
	2: {2, 3},
	3: {3, 4},
	4: {4, 99},
}

// Syllables: how many syllables a word has.
type syllablesSpace struct{ env Env }

// NewSyllables returns the syllable-count generator.
func NewSyllables(env Env) Generator {
	return newFamily[locale.Word](problem.TypeSyllables, env, syllablesSpace{env})
}

func (s syllablesSpace) candidates(d int) []locale.Word {
	band := syllableBands[d]
	return wordsWhere(s.env, func(w locale.Word) bool {
		return w.Syllables >= band[0] && w.Syllables <= band[1]
	})
}

func (syllablesSpace) key(w locale.Word) []string { return []string{w.Text} }

func (s syllablesSpace) build(_ int, w locale.Word) problem.Problem {
	return problem.Problem{
		Visual: problem.Visual{
			Kind:        problem.VisualWord,
			Elements:    []string{w.Emoji},
			DisplayText: w.Text,
		},
		Prompt:  locale.Prompt(s.env.language(), locale.PromptSyllables, w.Text),
		Answer:  problem.NumberAnswer(w.Syllables),
		Choices: numberAnswers(NumericChoices(s.env.Rand, w.Syllables, DefaultChoiceCount)),
	}
}

// Emotions: how a child would feel in a short scenario.
type emotionsSpace struct{ env Env }

// NewEmotions returns the social-emotional generator.
func NewEmotions(env Env) Generator {
	return newFamily[scenario](problem.TypeEmotions, env, emotionsSpace{env})
}

func (emotionsSpace) candidates(d int) []scenario {
	var out []scenario
	for _, sc := range scenarios {
		if sc.Difficulty == d {
			out = append(out, sc)
		}
	}
	return out
}

func (emotionsSpace) key(sc scenario) []string { return []string{sc.ID} }

func (s emotionsSpace) build(_ int, sc scenario) problem.Problem {
	lang := s.env.language()
	text, ok := sc.Text[locale.Code(lang)]
	if !ok {
		text = sc.Text["en"]
	}
	correct := emotionByID(sc.Emotion).answer()
	pool := make([]problem.Answer, len(emotions))
	for i, e := range emotions {
		pool[i] = e.answer()
	}
	return problem.Problem{
		Visual: problem.Visual{
			Kind:        problem.VisualScene,
			Elements:    []string{sc.Emoji},
			DisplayText: text,
		},
		Prompt:  locale.Prompt(lang, locale.PromptEmotions),
		Answer:  correct,
		Choices: pickChoices(s.env.Rand, correct, pool, DefaultChoiceCount),
	}
}
