package problem

import "strconv"

// AnswerKind discriminates the Answer union.
type AnswerKind string

const (
	AnswerNumber  AnswerKind = "number"
	AnswerSide    AnswerKind = "side"
	AnswerPattern AnswerKind = "pattern"
	AnswerLetter  AnswerKind = "letter"
	AnswerObject  AnswerKind = "object"
)

// Side is the answer to a comparison problem.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
	SideEqual Side = "equal"
)

// Answer is a tagged union. Only the payload field matching Kind is set.
type Answer struct {
	Kind    AnswerKind
	Number  int
	Side    Side
	Pattern string
	Letter  string
	Object  string

	// Labels maps a language code to a display label. Object answers
	// only; never part of equality.
	Labels map[string]string

	// Symbol is an emoji or glyph drawn next to the answer. Presentation
	// only.
	Symbol string
}

func NumberAnswer(n int) Answer { return Answer{Kind: AnswerNumber, Number: n} }
func SideAnswer(s Side) Answer { return Answer{Kind: AnswerSide, Side: s} }
func PatternAnswer(p string) Answer { return Answer{Kind: AnswerPattern, Pattern: p} }
func LetterAnswer(l string) Answer { return Answer{Kind: AnswerLetter, Letter: l} }
func ObjectAnswer(obj string) Answer { return Answer{Kind: AnswerObject, Object: obj} }

// LabeledObjectAnswer returns an object answer carrying display labels.
func LabeledObjectAnswer(obj string, labels map[string]string) Answer {
	return Answer{Kind: AnswerObject, Object: obj, Labels: labels}
}

// Equal compares kind and payload.
func (a Answer) Equal(b Answer) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case AnswerNumber:
		return a.Number == b.Number
	case AnswerSide:
		return a.Side == b.Side
	case AnswerPattern:
		return a.Pattern == b.Pattern
	case AnswerLetter:
		return a.Letter == b.Letter
	case AnswerObject:
		return a.Object == b.Object
	}
	return false
}

// Display returns the symbol and label together, for text surfaces.
func (a Answer) Display(lang string) string {
	label := a.Label(lang)
	if a.Symbol == "" || a.Symbol == label {
		return label
	}
	return a.Symbol + " " + label
}

// Label returns the display text for the answer in the given language.
func (a Answer) Label(lang string) string {
	switch a.Kind {
	case AnswerNumber:
		return strconv.Itoa(a.Number)
	case AnswerSide:
		return string(a.Side)
	case AnswerPattern:
		return a.Pattern
	case AnswerLetter:
		return a.Letter
	case AnswerObject:
		if l, ok := a.Labels[lang]; ok {
			return l
		}
		if l, ok := a.Labels["en"]; ok {
			return l
		}
		return a.Object
	}
	return ""
}
