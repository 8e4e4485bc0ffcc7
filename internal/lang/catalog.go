// Package lang holds the fixed catalog of greeting languages and the helpers
// that turn a user supplied filter into an ordered list of languages.
package lang

import (
	"sort"

	"golang.org/x/text/cases"
)

// Placeholder is the substitution marker present exactly once in every template.
const Placeholder = "{name}"

// Language is one supported greeting language.
type Language struct {
	Code             string `json:"code" yaml:"code"`
	Name             string `json:"name" yaml:"name"`
	BannerName       string `json:"bannerName" yaml:"bannerName"`
	GreetingTemplate string `json:"greetingTemplate" yaml:"greetingTemplate"`
	FlagEmoji        string `json:"flagEmoji" yaml:"flagEmoji"`
}

var catalog = []Language{
	{Code: "en", Name: "English", BannerName: "ENGLISH", GreetingTemplate: "Hello, {name}!", FlagEmoji: "🇬🇧"},
	{Code: "fr", Name: "French", BannerName: "FRANÇAIS", GreetingTemplate: "Bonjour, {name} !", FlagEmoji: "🇫🇷"},
	{Code: "es", Name: "Spanish", BannerName: "ESPAÑOL", GreetingTemplate: "¡Hola, {name}!", FlagEmoji: "🇪🇸"},
	{Code: "de", Name: "German", BannerName: "DEUTSCH", GreetingTemplate: "Hallo, {name}!", FlagEmoji: "🇩🇪"},
	{Code: "ja", Name: "Japanese", BannerName: "JAPANESE", GreetingTemplate: "こんにちは、{name}！", FlagEmoji: "🇯🇵"},
	{Code: "zh", Name: "Mandarin", BannerName: "MANDARIN", GreetingTemplate: "你好，{name}！", FlagEmoji: "🇨🇳"},
	{Code: "ar", Name: "Arabic", BannerName: "ARABIC", GreetingTemplate: "مرحبا، {name}!", FlagEmoji: "🇸🇦"},
	{Code: "hi", Name: "Hindi", BannerName: "HINDI", GreetingTemplate: "नमस्ते, {name}!", FlagEmoji: "🇮🇳"},
	{Code: "sw", Name: "Swahili", BannerName: "KISWAHILI", GreetingTemplate: "Habari, {name}!", FlagEmoji: "🇰🇪"},
	{Code: "pt", Name: "Portuguese", BannerName: "PORTUGUÊS", GreetingTemplate: "Olá, {name}!", FlagEmoji: "🇧🇷"},
}

var folder = cases.Fold()

// fold returns the case-folded form used for all name comparisons.
func fold(s string) string {
	return folder.String(s)
}

// All returns every language in catalog order, English first.
func All() []Language {
	out := make([]Language, len(catalog))
	copy(out, catalog)
	return out
}

// FindByName looks a language up by display name, ignoring case.
func FindByName(name string) (Language, error) {
	key := fold(name)
	for _, l := range catalog {
		if fold(l.Name) == key {
			return l, nil
		}
	}
	return Language{}, &NotFoundError{Name: name}
}

// FindByCode looks a language up by its short code, ignoring case.
func FindByCode(code string) (Language, error) {
	key := fold(code)
	for _, l := range catalog {
		if fold(l.Code) == key {
			return l, nil
		}
	}
	return Language{}, &NotFoundError{Name: code}
}

// Names returns the display names sorted alphabetically.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for _, l := range catalog {
		out = append(out, l.Name)
	}
	sort.Strings(out)
	return out
}
