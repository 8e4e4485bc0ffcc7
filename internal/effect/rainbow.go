package effect

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rainbow colors every grapheme of text with the next palette color.
// Whitespace is written unstyled and does not advance the cycle.
func Rainbow(r *lipgloss.Renderer, text string, useColor bool) string {
	if !useColor {
		return text
	}
	var b strings.Builder
	i := 0
	for _, g := range Graphemes(text) {
		if isBlank(g) {
			b.WriteString(g)
			continue
		}
		c := Palette[i%len(Palette)]
		b.WriteString(TextStyle(r).Foreground(c.Lipgloss()).Render(g))
		i++
	}
	return b.String()
}
