package effect

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/flarebyte/greet/internal/randsrc"
)

// Color is a named ANSI color of the party palette.
type Color struct {
	Name string
	ANSI string
}

// Lipgloss returns the color as a lipgloss terminal color.
func (c Color) Lipgloss() lipgloss.Color { return lipgloss.Color(c.ANSI) }

// Palette is the 12 color cycle shared by party colors and rainbow.
var Palette = []Color{
	{Name: "red", ANSI: "1"},
	{Name: "green", ANSI: "2"},
	{Name: "yellow", ANSI: "3"},
	{Name: "blue", ANSI: "4"},
	{Name: "magenta", ANSI: "5"},
	{Name: "cyan", ANSI: "6"},
	{Name: "bright_red", ANSI: "9"},
	{Name: "bright_green", ANSI: "10"},
	{Name: "bright_yellow", ANSI: "11"},
	{Name: "bright_blue", ANSI: "12"},
	{Name: "bright_magenta", ANSI: "13"},
	{Name: "bright_cyan", ANSI: "14"},
}

// Fixed colors of the non-party styles.
var (
	Cyan    = Palette[5]
	Green   = Palette[1]
	Magenta = Palette[4]
	Yellow  = Palette[2]
)

// RandomColor draws one palette color.
func RandomColor(src randsrc.Source) Color {
	return Palette[src.Intn(len(Palette))]
}
