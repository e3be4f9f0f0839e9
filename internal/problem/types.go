package problem

// Type identifies a problem family.
type Type string

const (
	TypeCounting    Type = "counting"
	TypeAddition    Type = "addition"
	TypeSubtraction Type = "subtraction"
	TypeComparison  Type = "comparison"
	TypePattern     Type = "pattern"
	TypeSequence    Type = "sequence"
	TypeColor       Type = "color"
	TypeShape       Type = "shape"
	TypeOddOneOut   Type = "logic:odd-one-out"
	TypeMatching    Type = "logic:matching"
	TypeSorting     Type = "logic:sorting"
	TypeLetters     Type = "letters"
	TypeWords       Type = "words"
	TypeSyllables   Type = "syllables"
	TypeEmotions    Type = "emotions"
)

// Difficulty bounds shared by every family.
const (
	MinDifficulty = 1
	MaxDifficulty = 4
)

// ClampDifficulty forces d into [MinDifficulty, MaxDifficulty].
func ClampDifficulty(d int) int {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}

// AllTypes returns every problem family in display order.
func AllTypes() []Type {
	return []Type{
		TypeCounting, TypeAddition, TypeSubtraction, TypeComparison,
		TypePattern, TypeSequence, TypeColor, TypeShape,
		TypeOddOneOut, TypeMatching, TypeSorting,
		TypeLetters, TypeWords, TypeSyllables, TypeEmotions,
	}
}

// Valid reports whether t is a known family.
func (t Type) Valid() bool {
	for _, known := range AllTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable label for the family.
func (t Type) DisplayName() string {
	switch t {
	case TypeCounting:
		return "Counting"
	case TypeAddition:
		return "Addition"
	case TypeSubtraction:
		return "Subtraction"
	case TypeComparison:
		return "More or Less"
	case TypePattern:
		return "Patterns"
	case TypeSequence:
		return "Number Sequences"
	case TypeColor:
		return "Colors"
	case TypeShape:
		return "Shapes"
	case TypeOddOneOut:
		return "Odd One Out"
	case TypeMatching:
		return "What Goes Together"
	case TypeSorting:
		return "Sorting"
	case TypeLetters:
		return "First Letters"
	case TypeWords:
		return "Word Length"
	case TypeSyllables:
		return "Syllables"
	case TypeEmotions:
		return "Feelings"
	default:
		return string(t)
	}
}

// VisualKind discriminates the shape of a Visual payload.
type VisualKind string

const (
	VisualObjects    VisualKind = "objects"
	VisualEquation   VisualKind = "equation"
	VisualComparison VisualKind = "comparison"
	VisualSequence   VisualKind = "sequence"
	VisualSwatch     VisualKind = "swatch"
	VisualShape      VisualKind = "shape"
	VisualGroup      VisualKind = "group"
	VisualWord       VisualKind = "word"
	VisualScene      VisualKind = "scene"
)

// Visual describes what is drawn for a problem. Which fields are set
// depends on Kind.
type Visual struct {
	Kind VisualKind

	// Elements are the drawable items, in order. For comparison visuals
	// the first half is the left group and the second half the right.
	Elements []string

	// Operator is "+" or "-" for equations.
	Operator string

	// DisplayText is free text shown with the visual (a word, a scene).
	DisplayText string

	// MissingIndex marks the hidden element of a sequence, nil otherwise.
	MissingIndex *int

	// Split is the number of leading Elements that belong to the left
	// group of a comparison visual.
	Split int
}

// Problem is a single generated practice item. Problems are created fresh
// on every generation call and never mutated afterwards.
type Problem struct {
	ID         string
	Type       Type
	Difficulty int
	Signature  Signature
	Visual     Visual
	Prompt     string
	Answer     Answer
	Choices    []Answer
}

// CorrectIndex returns the index of the correct answer within Choices,
// or -1 if it is missing.
func (p *Problem) CorrectIndex() int {
	for i, c := range p.Choices {
		if c.Equal(p.Answer) {
			return i
		}
	}
	return -1
}

// CheckAnswer reports whether chosen is the correct answer for p.
func CheckAnswer(p *Problem, chosen Answer) bool {
	if p == nil {
		return false
	}
	return p.Answer.Equal(chosen)
}
