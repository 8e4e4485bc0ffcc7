package main

import (
	"os"

	"github.com/flarebyte/greet/cmd/greet/root"
)

// main mirrors cmd/greet so `go run .` works from the repository root.
func main() {
	if err := root.Execute(os.Args[1:]); err != nil {
		_, _ = os.Stderr.WriteString(root.ErrorLine(err) + "\n")
		os.Exit(root.ExitCode(err))
	}
}
