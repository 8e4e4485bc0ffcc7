package effect

import "github.com/charmbracelet/lipgloss"

// Box draws a rounded border around content with one column of horizontal
// padding. The box is as wide as its content.
func Box(r *lipgloss.Renderer, content string, useColor bool) string {
	st := TextStyle(r).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if useColor {
		st = st.BorderForeground(Cyan.Lipgloss())
	}
	return st.Render(content)
}
