package effect

import (
	"strings"
	"unicode"

	"github.com/apparentlymart/go-textseg/v15/textseg"
)

// Graphemes splits s into user-perceived characters so that flags, ZWJ
// sequences and variation selectors stay in one piece.
func Graphemes(s string) []string {
	if s == "" {
		return nil
	}
	tokens, err := textseg.AllTokens([]byte(s), textseg.ScanGraphemeClusters)
	if err != nil {
		return strings.Split(s, "")
	}
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, string(t))
	}
	return out
}

func isBlank(g string) bool {
	for _, r := range g {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
