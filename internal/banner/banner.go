// Package banner renders large ASCII-art banners for language names.
package banner

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/common-nighthawk/go-figure"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Renderer turns a short text into a multi-line banner.
type Renderer interface {
	Render(text string) string
}

// DefaultFont is the figlet font used when none is configured.
const DefaultFont = "standard"

// Figlet renders banners with a figlet font.
type Figlet struct {
	Font string
}

// NewFiglet returns a Figlet using font, or DefaultFont when font is empty.
func NewFiglet(font string) Figlet {
	if font == "" {
		font = DefaultFont
	}
	return Figlet{Font: font}
}

// Render draws text. Accented letters are folded to their base letter since
// figlet fonts only cover printable ASCII.
func (f Figlet) Render(text string) string {
	fig := figure.NewFigure(ASCIIFold(text), f.Font, false)
	return trimBlankTail(fig.String())
}

// CheckFont reports whether font can be loaded.
func CheckFont(font string) (err error) {
	if font == "" {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("unknown figlet font %q", font)
		}
	}()
	_ = figure.NewFigure("A", font, true)
	return nil
}

var accentStripper = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ASCIIFold removes combining marks, e.g. "FRANÇAIS" becomes "FRANCAIS".
func ASCIIFold(s string) string {
	out, _, err := transform.String(accentStripper, s)
	if err != nil {
		return s
	}
	return out
}

func trimBlankTail(s string) string {
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

// Func adapts a plain function to Renderer.
type Func func(text string) string

// Render calls f.
func (f Func) Render(text string) string { return f(text) }
