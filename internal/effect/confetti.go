package effect

import (
	"strings"

	"github.com/flarebyte/greet/internal/randsrc"
)

// ConfettiGlyphs are drawn with replacement by AddConfetti.
var ConfettiGlyphs = []string{"🎉", "🎊", "✨", "🎈", "🎆", "🎇"}

const confettiPerSide = 3

// AddConfetti surrounds text with three random glyphs on each side,
// separated from it by one space.
func AddConfetti(src randsrc.Source, text string) string {
	return confettiRun(src) + " " + text + " " + confettiRun(src)
}

func confettiRun(src randsrc.Source) string {
	var b strings.Builder
	for i := 0; i < confettiPerSide; i++ {
		b.WriteString(ConfettiGlyphs[src.Intn(len(ConfettiGlyphs))])
	}
	return b.String()
}
