package root

import (
	"errors"
	"strings"
)

type exitCoder interface {
	ExitCode() int
}

// ExitCode maps err to a process exit code: 0 for nil, the code carried by
// any error in the chain, else 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec exitCoder
	if errors.As(err, &ec) {
		if c := ec.ExitCode(); c != 0 {
			return c
		}
	}
	return 1
}

// ErrorLine folds err into a single line for stderr.
func ErrorLine(err error) string {
	msg := strings.Join(strings.Fields(err.Error()), " ")
	if msg == "" {
		msg = "error"
	}
	return msg
}
