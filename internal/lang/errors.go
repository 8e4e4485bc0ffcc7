package lang

import (
	"fmt"
	"strings"
)

const (
	exitCodeInvalidLanguage = 2
	exitCodeEmptyPool       = 3
)

// NotFoundError is returned when a name matches no catalog entry.
type NotFoundError struct{ Name string }

func (e *NotFoundError) Error() string { return "unknown language: " + e.Name }

// InvalidLanguageError reports every name of a filter that matched nothing.
type InvalidLanguageError struct {
	Invalid []string
	Valid   []string
}

func (e *InvalidLanguageError) Error() string {
	quoted := make([]string, 0, len(e.Invalid))
	for _, n := range e.Invalid {
		quoted = append(quoted, fmt.Sprintf("%q", n))
	}
	return fmt.Sprintf("Invalid language(s): %s. Valid languages: %s",
		strings.Join(quoted, ", "), strings.Join(e.Valid, ", "))
}

// ExitCode implements the CLI exit code contract.
func (e *InvalidLanguageError) ExitCode() int { return exitCodeInvalidLanguage }

// EmptyPoolError is returned when random selection has nothing to draw from.
type EmptyPoolError struct{}

func (e *EmptyPoolError) Error() string {
	return "no languages to choose from: the language filter resolved to an empty set"
}

// ExitCode implements the CLI exit code contract.
func (e *EmptyPoolError) ExitCode() int { return exitCodeEmptyPool }
