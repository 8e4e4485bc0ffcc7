// Package render drives the effect pipeline over greetings and writes the
// result to a console: sequential or grid layout, cowsay capture, typewriter
// animation and the closing proverb.
package render

import (
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultWidth is used when the output width cannot be detected.
const DefaultWidth = 80

// Console is a styled writer with a fixed width.
type Console struct {
	Out      io.Writer
	Styles   *lipgloss.Renderer
	Width    int
	UseColor bool
}

// NewConsole returns a console on w. Colors are forced on or off regardless
// of whether w is a terminal. A width <= 0 is detected from w.
func NewConsole(w io.Writer, useColor bool, width int) *Console {
	if width <= 0 {
		width = DetectWidth(w)
	}
	r := lipgloss.NewRenderer(w)
	if useColor {
		r.SetColorProfile(termenv.ANSI)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Console{Out: w, Styles: r, Width: width, UseColor: useColor}
}

// Capture returns a console with the same settings writing to a buffer.
func (c *Console) Capture() (*Console, *bytes.Buffer) {
	var buf bytes.Buffer
	r := lipgloss.NewRenderer(&buf)
	r.SetColorProfile(c.Styles.ColorProfile())
	return &Console{Out: &buf, Styles: r, Width: c.Width, UseColor: c.UseColor}, &buf
}

// Println writes s and a line break.
func (c *Console) Println(s string) error {
	_, err := io.WriteString(c.Out, s+"\n")
	return err
}

// DetectWidth reports the terminal width of w, then $COLUMNS, then
// DefaultWidth.
func DetectWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	if cols, err := strconv.Atoi(strings.TrimSpace(os.Getenv("COLUMNS"))); err == nil && cols > 0 {
		return cols
	}
	return DefaultWidth
}

func trimLinesRight(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(lines, "\n")
}
