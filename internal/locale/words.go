package locale

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Word is one entry of a language's word bank.
type Word struct {
	Text      string
	Emoji     string
	Syllables int
}

// Length returns the number of letters (runes) in the word.
func (w Word) Length() int {
	return utf8.RuneCountInString(w.Text)
}

// FirstLetter returns the letter of lang's alphabet the word starts with,
// upper-cased with the casing rules of lang. An accented initial that is
// not a letter of its own in lang ("Á" in Spanish) folds to its base
// letter; "Ñ" and "Ä" stay as they are.
func (w Word) FirstLetter(lang language.Tag) string {
	r, _ := utf8.DecodeRuneInString(w.Text)
	if r == utf8.RuneError {
		return ""
	}
	letter := cases.Upper(lang).String(string(r))
	if slices.Contains(Alphabet(lang), letter) {
		return letter
	}
	return Fold(letter)
}

// Fold strips diacritics: "Á" and "Ä" both fold to "A".
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// LetterClass buckets a first letter into a difficulty band.
type LetterClass int

const (
	LetterVowel LetterClass = iota + 1
	LetterCommon
	LetterOther
	LetterRare
)

const (
	vowels       = "aeiouäöüáéíóú"
	commonLetter = "bdmnpst"
	rareLetter   = "jkqvwxyz"
)

// ClassOf returns the class of the (already upper- or lower-cased) letter.
func ClassOf(letter string) LetterClass {
	l := strings.ToLower(letter)
	switch {
	case l == "":
		return LetterOther
	case strings.Contains(vowels, l):
		return LetterVowel
	case strings.Contains(commonLetter, l):
		return LetterCommon
	case strings.Contains(rareLetter, l):
		return LetterRare
	default:
		return LetterOther
	}
}

var words = map[string][]Word{
	"en": {
		{"cat", "🐱", 1}, {"dog", "🐶", 1}, {"sun", "☀️", 1}, {"bee", "🐝", 1},
		{"egg", "🥚", 1}, {"owl", "🦉", 1}, {"ant", "🐜", 1}, {"fish", "🐟", 1},
		{"ball", "⚽", 1}, {"tree", "🌳", 1}, {"moon", "🌙", 1}, {"star", "⭐", 1},
		{"apple", "🍎", 2}, {"house", "🏠", 1}, {"tiger", "🐯", 2}, {"robot", "🤖", 2},
		{"pizza", "🍕", 2}, {"bread", "🍞", 1}, {"rabbit", "🐰", 2}, {"monkey", "🐵", 2},
		{"orange", "🍊", 2}, {"umbrella", "☂️", 3}, {"elephant", "🐘", 3}, {"banana", "🍌", 3},
		{"penguin", "🐧", 2}, {"kite", "🪁", 1}, {"zebra", "🦓", 2}, {"queen", "👑", 1},
		{"violin", "🎻", 3}, {"whale", "🐋", 1}, {"key", "🔑", 1}, {"ice", "🧊", 1},
		{"dinosaur", "🦕", 3}, {"caterpillar", "🐛", 4}, {"watermelon", "🍉", 4},
		{"helicopter", "🚁", 4}, {"avocado", "🥑", 4}, {"alligator", "🐊", 4},
		{"octopus", "🐙", 3}, {"butterfly", "🦋", 3}, {"tomato", "🍅", 3},
		{"potato", "🥔", 3}, {"carrot", "🥕", 2}, {"lion", "🦁", 2}, {"frog", "🐸", 1},
		{"duck", "🦆", 1}, {"hat", "🎩", 1}, {"cup", "☕", 1}, {"yak", "🐂", 1},
	},
	"de": {
		{"Katze", "🐱", 2}, {"Hund", "🐶", 1}, {"Sonne", "☀️", 2}, {"Biene", "🐝", 2},
		{"Ei", "🥚", 1}, {"Eule", "🦉", 2}, {"Ameise", "🐜", 3}, {"Fisch", "🐟", 1},
		{"Ball", "⚽", 1}, {"Baum", "🌳", 1}, {"Mond", "🌙", 1}, {"Stern", "⭐", 1},
		{"Apfel", "🍎", 2}, {"Haus", "🏠", 1}, {"Tiger", "🐯", 2}, {"Roboter", "🤖", 3},
		{"Pizza", "🍕", 2}, {"Brot", "🍞", 1}, {"Hase", "🐰", 2}, {"Affe", "🐵", 2},
		{"Orange", "🍊", 3}, {"Regenschirm", "☂️", 3}, {"Elefant", "🐘", 3}, {"Banane", "🍌", 3},
		{"Pinguin", "🐧", 2}, {"Drachen", "🪁", 2}, {"Zebra", "🦓", 2}, {"Königin", "👑", 3},
		{"Geige", "🎻", 2}, {"Wal", "🐋", 1}, {"Schlüssel", "🔑", 2}, {"Eis", "🧊", 1},
		{"Dinosaurier", "🦕", 5}, {"Raupe", "🐛", 2}, {"Wassermelone", "🍉", 5},
		{"Hubschrauber", "🚁", 3}, {"Avocado", "🥑", 4}, {"Krokodil", "🐊", 3},
		{"Oktopus", "🐙", 3}, {"Schmetterling", "🦋", 3}, {"Tomate", "🍅", 3},
		{"Kartoffel", "🥔", 3}, {"Karotte", "🥕", 3}, {"Löwe", "🦁", 2}, {"Frosch", "🐸", 1},
		{"Ente", "🦆", 2}, {"Hut", "🎩", 1}, {"Tasse", "☕", 2}, {"Igel", "🦔", 2},
		{"Uhr", "⌚", 1},
	},
	"es": {
		{"gato", "🐱", 2}, {"perro", "🐶", 2}, {"sol", "☀️", 1}, {"abeja", "🐝", 3},
		{"huevo", "🥚", 2}, {"búho", "🦉", 2}, {"hormiga", "🐜", 3}, {"pez", "🐟", 1},
		{"pelota", "⚽", 3}, {"árbol", "🌳", 2}, {"luna", "🌙", 2}, {"estrella", "⭐", 3},
		{"manzana", "🍎", 3}, {"casa", "🏠", 2}, {"tigre", "🐯", 2}, {"robot", "🤖", 2},
		{"pizza", "🍕", 2}, {"pan", "🍞", 1}, {"conejo", "🐰", 3}, {"mono", "🐵", 2},
		{"naranja", "🍊", 3}, {"paraguas", "☂️", 3}, {"elefante", "🐘", 4}, {"plátano", "🍌", 3},
		{"pingüino", "🐧", 3}, {"cometa", "🪁", 3}, {"cebra", "🦓", 2}, {"reina", "👑", 2},
		{"violín", "🎻", 2}, {"ballena", "🐋", 3}, {"llave", "🔑", 2}, {"hielo", "🧊", 2},
		{"dinosaurio", "🦕", 5}, {"oruga", "🐛", 3}, {"sandía", "🍉", 3},
		{"helicóptero", "🚁", 5}, {"aguacate", "🥑", 4}, {"cocodrilo", "🐊", 4},
		{"pulpo", "🐙", 2}, {"mariposa", "🦋", 4}, {"tomate", "🍅", 3},
		{"papa", "🥔", 2}, {"zanahoria", "🥕", 4}, {"león", "🦁", 2}, {"rana", "🐸", 2},
		{"pato", "🦆", 2}, {"uva", "🍇", 2}, {"oso", "🐻", 2}, {"kiwi", "🥝", 2},
		{"yogur", "🥛", 2},
	},
}

// Words returns the word bank for lang, falling back to English.
// The returned slice must not be modified.
func Words(lang language.Tag) []Word {
	if ws, ok := words[Code(lang)]; ok {
		return ws
	}
	return words["en"]
}

// Alphabet returns the letters used for decoy choices in lang.
func Alphabet(lang language.Tag) []string {
	letters := strings.Split("ABCDEFGHIJKLMNOPQRSTUVWXYZ", "")
	switch Code(lang) {
	case "de":
		letters = append(letters, "Ä", "Ö", "Ü")
	case "es":
		letters = append(letters, "Ñ")
	}
	return letters
}
