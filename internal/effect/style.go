package effect

import "github.com/charmbracelet/lipgloss"

// TextStyle returns a style of r that writes tabs as typed.
func TextStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().TabWidth(lipgloss.NoTabConversion)
}
