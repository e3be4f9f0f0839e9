package problemgen

import "github.com/abhisek/sprout/internal/problem"

// Catalogue data for the families. Everything here is content, not logic;
// identity-bearing fields are the IDs, emoji are presentation.

// countables are the objects drawn for counting and arithmetic visuals.
var countables = []string{"🍎", "⭐", "🐞", "🎈", "🐟", "🌸", "🚗", "🍪", "🦆", "⚽"}

// entry is a catalogue item with localized labels.
type entry struct {
	ID     string
	Emoji  string
	Labels map[string]string
}

func (e entry) answer() problem.Answer {
	a := problem.LabeledObjectAnswer(e.ID, e.Labels)
	a.Symbol = e.Emoji
	return a
}

// colors grow with difficulty: the first 2+d entries are in play.
var colors = []entry{
	{"red", "🔴", map[string]string{"en": "red", "de": "rot", "es": "rojo"}},
	{"blue", "🔵", map[string]string{"en": "blue", "de": "blau", "es": "azul"}},
	{"yellow", "🟡", map[string]string{"en": "yellow", "de": "gelb", "es": "amarillo"}},
	{"green", "🟢", map[string]string{"en": "green", "de": "grün", "es": "verde"}},
	{"orange", "🟠", map[string]string{"en": "orange", "de": "orange", "es": "naranja"}},
	{"purple", "🟣", map[string]string{"en": "purple", "de": "lila", "es": "morado"}},
}

// shapes grow with difficulty the same way colors do.
var shapes = []entry{
	{"circle", "●", map[string]string{"en": "circle", "de": "Kreis", "es": "círculo"}},
	{"square", "■", map[string]string{"en": "square", "de": "Quadrat", "es": "cuadrado"}},
	{"triangle", "▲", map[string]string{"en": "triangle", "de": "Dreieck", "es": "triángulo"}},
	{"star", "★", map[string]string{"en": "star", "de": "Stern", "es": "estrella"}},
	{"heart", "♥", map[string]string{"en": "heart", "de": "Herz", "es": "corazón"}},
	{"diamond", "◆", map[string]string{"en": "diamond", "de": "Raute", "es": "rombo"}},
}

// paletteFor returns the first 2+d entries of a growing palette.
func paletteFor(all []entry, difficulty int) []entry {
	n := 2 + difficulty
	if n > len(all) {
		n = len(all)
	}
	return all[:n]
}

// item is a drawable member of a category or a matching pair.
type item struct {
	ID    string
	Emoji string
}

func (it item) answer() problem.Answer {
	a := problem.ObjectAnswer(it.ID)
	a.Symbol = it.Emoji
	return a
}

// category groups items; categories are scoped to one difficulty.
type category struct {
	entry
	Difficulty int
	Members    []item
}

var categories = []category{
	{entry{"fruit", "🧺", map[string]string{"en": "fruit", "de": "Obst", "es": "fruta"}}, 1, []item{
		{"apple", "🍎"}, {"banana", "🍌"}, {"grapes", "🍇"}, {"strawberry", "🍓"}, {"orange", "🍊"}, {"pear", "🍐"},
	}},
	{entry{"animals", "🐾", map[string]string{"en": "animals", "de": "Tiere", "es": "animales"}}, 1, []item{
		{"dog", "🐶"}, {"cat", "🐱"}, {"rabbit", "🐰"}, {"bear", "🐻"}, {"frog", "🐸"}, {"monkey", "🐵"},
	}},
	{entry{"vehicles", "🛣️", map[string]string{"en": "vehicles", "de": "Fahrzeuge", "es": "vehículos"}}, 2, []item{
		{"car", "🚗"}, {"bus", "🚌"}, {"bike", "🚲"}, {"train", "🚂"}, {"plane", "✈️"}, {"rocket", "🚀"},
	}},
	{entry{"clothes", "👚", map[string]string{"en": "clothes", "de": "Kleidung", "es": "ropa"}}, 2, []item{
		{"shirt", "👕"}, {"jeans", "👖"}, {"dress", "👗"}, {"socks", "🧦"}, {"cap", "🧢"}, {"sneaker", "👟"},
	}},
	{entry{"weather", "🌤️", map[string]string{"en": "weather", "de": "Wetter", "es": "clima"}}, 3, []item{
		{"sunny", "☀️"}, {"rain", "🌧️"}, {"snow", "❄️"}, {"rainbow", "🌈"}, {"storm", "⛈️"}, {"tornado", "🌪️"},
	}},
	{entry{"music", "🎼", map[string]string{"en": "music", "de": "Musik", "es": "música"}}, 3, []item{
		{"guitar", "🎸"}, {"piano", "🎹"}, {"trumpet", "🎺"}, {"drum", "🥁"}, {"violin", "🎻"}, {"accordion", "🪗"},
	}},
	{entry{"sea", "🌊", map[string]string{"en": "sea animals", "de": "Meerestiere", "es": "animales marinos"}}, 4, []item{
		{"octopus", "🐙"}, {"tropical-fish", "🐠"}, {"crab", "🦀"}, {"dolphin", "🐬"}, {"whale", "🐳"}, {"squid", "🦑"},
	}},
	{entry{"tools", "🧰", map[string]string{"en": "tools", "de": "Werkzeug", "es": "herramientas"}}, 4, []item{
		{"hammer", "🔨"}, {"screwdriver", "🪛"}, {"wrench", "🔧"}, {"saw", "🪚"}, {"pick", "⛏️"}, {"axe", "🪓"},
	}},
}

// categoriesAt returns the categories scoped to one difficulty.
func categoriesAt(difficulty int) []*category {
	var out []*category
	for i := range categories {
		if categories[i].Difficulty == difficulty {
			out = append(out, &categories[i])
		}
	}
	return out
}

// pair links an item with the thing it goes with.
type pair struct {
	Difficulty int
	Item       item
	Partner    item
}

var pairs = []pair{
	{1, item{"key", "🔑"}, item{"lock", "🔒"}},
	{1, item{"bee", "🐝"}, item{"flower", "🌸"}},
	{1, item{"dog", "🐶"}, item{"bone", "🦴"}},
	{1, item{"sock", "🧦"}, item{"shoe", "👟"}},
	{2, item{"rabbit", "🐰"}, item{"carrot", "🥕"}},
	{2, item{"toothbrush", "🪥"}, item{"tooth", "🦷"}},
	{2, item{"umbrella", "☔"}, item{"rain", "🌧️"}},
	{2, item{"pencil", "✏️"}, item{"paper", "📄"}},
	{3, item{"monkey", "🐒"}, item{"banana", "🍌"}},
	{3, item{"cow", "🐄"}, item{"milk", "🥛"}},
	{3, item{"chicken", "🐔"}, item{"egg", "🥚"}},
	{3, item{"seedling", "🌱"}, item{"water", "💧"}},
	{4, item{"fire", "🔥"}, item{"extinguisher", "🧯"}},
	{4, item{"palette", "🎨"}, item{"brush", "🖌️"}},
	{4, item{"mailbox", "📬"}, item{"letter", "✉️"}},
	{4, item{"caterpillar", "🐛"}, item{"butterfly", "🦋"}},
}

var emotions = []entry{
	{"happy", "😀", map[string]string{"en": "happy", "de": "fröhlich", "es": "feliz"}},
	{"sad", "😢", map[string]string{"en": "sad", "de": "traurig", "es": "triste"}},
	{"scared", "😨", map[string]string{"en": "scared", "de": "ängstlich", "es": "asustado"}},
	{"surprised", "😮", map[string]string{"en": "surprised", "de": "überrascht", "es": "sorprendido"}},
	{"angry", "😠", map[string]string{"en": "angry", "de": "wütend", "es": "enojado"}},
	{"proud", "🤩", map[string]string{"en": "proud", "de": "stolz", "es": "orgulloso"}},
	{"tired", "😴", map[string]string{"en": "tired", "de": "müde", "es": "cansado"}},
	{"worried", "😟", map[string]string{"en": "worried", "de": "besorgt", "es": "preocupado"}},
	{"lonely", "😔", map[string]string{"en": "lonely", "de": "einsam", "es": "solo"}},
	{"grateful", "🙏", map[string]string{"en": "grateful", "de": "dankbar", "es": "agradecido"}},
	{"impatient", "😤", map[string]string{"en": "impatient", "de": "ungeduldig", "es": "impaciente"}},
}

func emotionByID(id string) entry {
	for _, e := range emotions {
		if e.ID == id {
			return e
		}
	}
	return entry{ID: id}
}

// scenario is a short situation with the feeling it usually causes.
type scenario struct {
	ID         string
	Difficulty int
	Emoji      string
	Emotion    string
	Text       map[string]string
}

var scenarios = []scenario{
	{"birthday-cake", 1, "🎂", "happy", map[string]string{
		"en": "You get a birthday cake.", "de": "Du bekommst einen Geburtstagskuchen."}},
	{"broken-toy", 1, "🧸", "sad", map[string]string{
		"en": "Your favourite toy broke.", "de": "Dein Lieblingsspielzeug ist kaputt."}},
	{"barking-dog", 1, "🐕", "scared", map[string]string{
		"en": "A big dog barks very loudly.", "de": "Ein großer Hund bellt sehr laut."}},
	{"surprise-gift", 2, "🎁", "surprised", map[string]string{
		"en": "A friend gives you a present you did not expect.", "de": "Ein Freund schenkt dir etwas Unerwartetes."}},
	{"knocked-tower", 2, "🧱", "angry", map[string]string{
		"en": "Someone knocks over your block tower on purpose.", "de": "Jemand wirft deinen Turm absichtlich um."}},
	{"lost-balloon", 2, "🎈", "sad", map[string]string{
		"en": "Your balloon floats away into the sky.", "de": "Dein Luftballon fliegt davon."}},
	{"first-ride", 3, "🚲", "proud", map[string]string{
		"en": "You ride your bike without help for the first time.", "de": "Du fährst zum ersten Mal allein Fahrrad."}},
	{"long-day", 3, "🛏️", "tired", map[string]string{
		"en": "You played outside all day long.", "de": "Du hast den ganzen Tag draußen gespielt."}},
	{"new-school", 3, "🏫", "worried", map[string]string{
		"en": "Tomorrow is your first day at a new school.", "de": "Morgen ist dein erster Tag an einer neuen Schule."}},
	{"alone-at-lunch", 4, "🧒", "lonely", map[string]string{
		"en": "Nobody sits with you at lunch.", "de": "Niemand setzt sich beim Mittagessen zu dir."}},
	{"shared-toy", 4, "🤝", "grateful", map[string]string{
		"en": "A friend shares their new toy with you.", "de": "Ein Freund teilt sein neues Spielzeug mit dir."}},
	{"long-wait", 4, "🕰️", "impatient", map[string]string{
		"en": "You have been waiting in line for a very long time.", "de": "Du wartest schon sehr lange in der Schlange."}},
}

// pattern palette and templates. Template letters map to palette colors
// at render time; only the template string is identity-bearing.
var patternPalette = []string{"🔴", "🟠", "🟡", "🟢", "🔵", "🟣", "🟤", "⚫", "⚪"}

var patternTemplates = map[int][]string{
	1: {"AB", "AAB", "ABB"},
	2: {"ABC", "AABB", "ABAC"},
	3: {"ABCD", "AABC", "ABBC"},
	4: {"AABBC", "ABCBA", "ABCDD"},
}

// MissingMark is drawn in place of a hidden element.
const MissingMark = "❓"
