// Package greeting builds greetings from catalog languages.
package greeting

import (
	"strings"

	"github.com/flarebyte/greet/internal/lang"
)

// Greeting is a language template with the name substituted.
type Greeting struct {
	Language lang.Language
	Text     string
	// Banner is reserved; banners are rendered from Language.BannerName at
	// render time.
	Banner string
}

// Generate substitutes name verbatim into the language template.
func Generate(l lang.Language, name string) Greeting {
	return Greeting{
		Language: l,
		Text:     strings.Replace(l.GreetingTemplate, lang.Placeholder, name, 1),
	}
}

// GenerateAll generates one greeting per language, in order.
func GenerateAll(langs []lang.Language, name string) []Greeting {
	out := make([]Greeting, 0, len(langs))
	for _, l := range langs {
		out = append(out, Generate(l, name))
	}
	return out
}
