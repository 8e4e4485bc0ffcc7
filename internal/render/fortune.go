package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mitchellh/go-wordwrap"

	"github.com/flarebyte/greet/internal/effect"
	"github.com/flarebyte/greet/internal/proverb"
)

const fortuneRuleWidth = 60

// RenderFortune writes p under a separator rule with a centered header and a
// right-aligned origin footer.
func (r *Renderer) RenderFortune(p proverb.Proverb) error {
	c := r.Console
	s := c.Styles
	color := r.Config.UseColor

	header := "Fortune of the Day"
	headerStyle := effect.TextStyle(s)
	quoteStyle := effect.TextStyle(s).Italic(true)
	transStyle := effect.TextStyle(s).Faint(true)
	footerStyle := effect.TextStyle(s)
	if color {
		header = "✨ Fortune of the Day ✨"
		headerStyle = headerStyle.Bold(true).Foreground(effect.Magenta.Lipgloss())
		quoteStyle = quoteStyle.Foreground(effect.Yellow.Lipgloss())
		transStyle = transStyle.Foreground(effect.Cyan.Lipgloss())
		footerStyle = footerStyle.Faint(true)
	}

	lines := []string{
		"",
		effect.TextStyle(s).Faint(true).Render(strings.Repeat("─", fortuneRuleWidth)),
		"",
		s.PlaceHorizontal(c.Width, lipgloss.Center, headerStyle.Render(header)),
		"",
		quoteStyle.Render(wrapTo(`"`+p.Text+`"`, c.Width)),
	}
	if p.HasTranslation() {
		lines = append(lines, "", transStyle.Render(wrapTo("— "+p.Translation, c.Width)))
	}
	footer := footerStyle.Render("[" + p.Language + " proverb]")
	lines = append(lines, "", s.PlaceHorizontal(c.Width, lipgloss.Right, footer), "")
	return c.Println(trimLinesRight(strings.Join(lines, "\n")))
}

func wrapTo(s string, width int) string {
	if width <= 0 {
		return s
	}
	return wordwrap.WrapString(s, uint(width))
}
