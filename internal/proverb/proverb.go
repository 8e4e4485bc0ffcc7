// Package proverb holds the fixed list of proverbs shown by --fortune.
package proverb

import (
	"golang.org/x/text/cases"

	"github.com/flarebyte/greet/internal/randsrc"
)

// Proverb is a saying in its original language. Translation is empty for
// English proverbs.
type Proverb struct {
	Text        string `json:"text" yaml:"text"`
	Language    string `json:"language" yaml:"language"`
	Translation string `json:"translation,omitempty" yaml:"translation,omitempty"`
}

// HasTranslation reports whether an English translation is available.
func (p Proverb) HasTranslation() bool { return p.Translation != "" }

var proverbs = []Proverb{
	{Text: "A journey of a thousand miles begins with a single step.", Language: "English"},
	{Text: "Where there's a will, there's a way.", Language: "English"},
	{Text: "Petit à petit, l'oiseau fait son nid.", Language: "French", Translation: "Little by little, the bird builds its nest."},
	{Text: "L'habit ne fait pas le moine.", Language: "French", Translation: "The habit does not make the monk."},
	{Text: "No hay mal que por bien no venga.", Language: "Spanish", Translation: "There is no bad from which good doesn't come."},
	{Text: "A quien madruga, Dios le ayuda.", Language: "Spanish", Translation: "God helps those who wake up early."},
	{Text: "Aller Anfang ist schwer.", Language: "German", Translation: "All beginnings are difficult."},
	{Text: "Übung macht den Meister.", Language: "German", Translation: "Practice makes perfect."},
	{Text: "七転び八起き", Language: "Japanese", Translation: "Fall seven times, stand up eight."},
	{Text: "一期一会", Language: "Japanese", Translation: "One time, one meeting (treasure every encounter)."},
	{Text: "千里之行，始于足下", Language: "Mandarin", Translation: "A journey of a thousand miles begins with a single step."},
	{Text: "学如逆水行舟，不进则退", Language: "Mandarin", Translation: "Learning is like rowing upstream; not to advance is to drop back."},
	{Text: "الصبر مفتاح الفرج", Language: "Arabic", Translation: "Patience is the key to relief."},
	{Text: "العلم نور", Language: "Arabic", Translation: "Knowledge is light."},
	{Text: "जहाँ चाह वहाँ राह", Language: "Hindi", Translation: "Where there is a will, there is a way."},
	{Text: "बूँद बूँद से सागर भरता है", Language: "Hindi", Translation: "Drop by drop fills the ocean."},
	{Text: "Haraka haraka haina baraka.", Language: "Swahili", Translation: "Hurry hurry has no blessing."},
	{Text: "Asiyefunzwa na mamaye hufunzwa na ulimwengu.", Language: "Swahili", Translation: "He who is not taught by his mother will be taught by the world."},
	{Text: "Devagar se vai ao longe.", Language: "Portuguese", Translation: "Slowly one goes far."},
	{Text: "Água mole em pedra dura, tanto bate até que fura.", Language: "Portuguese", Translation: "Soft water on hard stone hits until it pierces."},
}

// All returns every proverb in catalog order.
func All() []Proverb {
	out := make([]Proverb, len(proverbs))
	copy(out, proverbs)
	return out
}

// SelectRandom draws one proverb uniformly.
func SelectRandom(src randsrc.Source) Proverb {
	return proverbs[src.Intn(len(proverbs))]
}

// ForLanguage returns the proverbs of one language, matched ignoring case.
func ForLanguage(name string) []Proverb {
	f := cases.Fold()
	key := f.String(name)
	var out []Proverb
	for _, p := range proverbs {
		if f.String(p.Language) == key {
			out = append(out, p)
		}
	}
	return out
}
