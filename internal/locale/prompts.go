package locale

import (
	"fmt"

	"golang.org/x/text/language"
)

// Prompt keys, one per family.
const (
	PromptCounting    = "counting"
	PromptAddition    = "addition"
	PromptSubtraction = "subtraction"
	PromptComparison  = "comparison"
	PromptPattern     = "pattern"
	PromptSequence    = "sequence"
	PromptColor       = "color"
	PromptShape       = "shape"
	PromptOddOneOut   = "odd-one-out"
	PromptMatching    = "matching"
	PromptSorting     = "sorting"
	PromptLetters     = "letters"
	PromptWords       = "words"
	PromptSyllables   = "syllables"
	PromptEmotions    = "emotions"
)

var prompts = map[string]map[string]string{
	"en": {
		PromptCounting:    "How many do you see?",
		PromptAddition:    "What is %d + %d?",
		PromptSubtraction: "What is %d - %d?",
		PromptComparison:  "Which side has more?",
		PromptPattern:     "What comes next?",
		PromptSequence:    "Which number is missing?",
		PromptColor:       "What color is this?",
		PromptShape:       "What shape is this?",
		PromptOddOneOut:   "Which one does not belong?",
		PromptMatching:    "What goes with %s?",
		PromptSorting:     "Where does %s belong?",
		PromptLetters:     "Which letter does %s start with?",
		PromptWords:       "How many letters are in %s?",
		PromptSyllables:   "How many syllables are in %s?",
		PromptEmotions:    "How would you feel?",
	},
	"de": {
		PromptCounting:    "Wie viele siehst du?",
		PromptAddition:    "Was ist %d + %d?",
		PromptSubtraction: "Was ist %d - %d?",
		PromptComparison:  "Welche Seite hat mehr?",
		PromptPattern:     "Was kommt als Nächstes?",
		PromptSequence:    "Welche Zahl fehlt?",
		PromptColor:       "Welche Farbe ist das?",
		PromptShape:       "Welche Form ist das?",
		PromptOddOneOut:   "Was passt nicht dazu?",
		PromptMatching:    "Was gehört zu %s?",
		PromptSorting:     "Wohin gehört %s?",
		PromptLetters:     "Mit welchem Buchstaben beginnt %s?",
		PromptWords:       "Wie viele Buchstaben hat %s?",
		PromptSyllables:   "Wie viele Silben hat %s?",
		PromptEmotions:    "Wie würdest du dich fühlen?",
	},
	"es": {
		PromptCounting:    "¿Cuántos ves?",
		PromptAddition:    "¿Cuánto es %d + %d?",
		PromptSubtraction: "¿Cuánto es %d - %d?",
		PromptComparison:  "¿Qué lado tiene más?",
		PromptPattern:     "¿Qué sigue?",
		PromptSequence:    "¿Qué número falta?",
		PromptColor:       "¿De qué color es?",
		PromptShape:       "¿Qué forma es?",
		PromptOddOneOut:   "¿Cuál no pertenece?",
		PromptMatching:    "¿Qué va con %s?",
		PromptSorting:     "¿Dónde va %s?",
		PromptLetters:     "¿Con qué letra empieza %s?",
		PromptWords:       "¿Cuántas letras tiene %s?",
		PromptSyllables:   "¿Cuántas sílabas tiene %s?",
	},
}

// Prompt renders the prompt template for key in lang. Missing
// translations fall back to English.
func Prompt(lang language.Tag, key string, args ...any) string {
	tmpl, ok := prompts[Code(lang)][key]
	if !ok {
		tmpl = prompts["en"][key]
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}
