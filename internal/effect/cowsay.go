package effect

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var ansiSequence = regexp.MustCompile(`\x1b\[[0-9;]*m`)

var cow = []string{
	`        \   ^__^`,
	`         \  (oo)\_______`,
	`            (__)\       )\/\`,
	`                ||----w |`,
	`                ||     ||`,
}

// StripANSI removes SGR escape sequences.
func StripANSI(s string) string {
	return ansiSequence.ReplaceAllString(s, "")
}

// lineWidth counts characters, ignoring color sequences.
func lineWidth(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

func padRight(s string, width int) string {
	if n := width - lineWidth(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// Cowsay wraps text in a speech bubble and puts the cow below it.
func Cowsay(text string) string {
	lines := []string{""}
	if text != "" {
		lines = strings.Split(text, "\n")
	}
	maxWidth := 0
	for _, l := range lines {
		if w := lineWidth(l); w > maxWidth {
			maxWidth = w
		}
	}

	parts := make([]string, 0, len(lines)+2+len(cow))
	parts = append(parts, " "+strings.Repeat("_", maxWidth+2))
	if len(lines) == 1 {
		parts = append(parts, "< "+padRight(lines[0], maxWidth)+" >")
	} else {
		last := len(lines) - 1
		for i, l := range lines {
			padded := padRight(l, maxWidth)
			switch i {
			case 0:
				parts = append(parts, "/ "+padded+" \\")
			case last:
				parts = append(parts, "\\ "+padded+" /")
			default:
				parts = append(parts, "| "+padded+" |")
			}
		}
	}
	parts = append(parts, " "+strings.Repeat("-", maxWidth+2))
	parts = append(parts, cow...)
	return strings.Join(parts, "\n")
}
