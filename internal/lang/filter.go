package lang

import "strings"

// ParseFilter splits a comma separated list of language names. Tokens are
// trimmed but otherwise kept as typed, in order, duplicates included.
func ParseFilter(raw string) []string {
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// Resolve maps names to languages. Unknown names are dropped silently.
func Resolve(names []string) []Language {
	out := make([]Language, 0, len(names))
	for _, n := range names {
		if l, err := FindByName(n); err == nil {
			out = append(out, l)
		}
	}
	return out
}

// Validate returns the names that match no language, first occurrence only.
func Validate(names []string) []string {
	var invalid []string
	seen := map[string]bool{}
	for _, n := range names {
		if _, err := FindByName(n); err == nil {
			continue
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		invalid = append(invalid, n)
	}
	return invalid
}

// CheckFilter validates names and returns an *InvalidLanguageError listing
// the offenders and the full valid set when any name is unknown.
func CheckFilter(names []string) error {
	invalid := Validate(names)
	if len(invalid) == 0 {
		return nil
	}
	return &InvalidLanguageError{Invalid: invalid, Valid: Names()}
}
