package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/flarebyte/greet/cmd/greet/root"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := root.ExecuteContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	if err != nil {
		// Print a short, single-line error to stderr on failures.
		// Do not print usage or stack traces.
		_, _ = os.Stderr.WriteString(root.ErrorLine(err) + "\n")
		os.Exit(root.ExitCode(err))
	}
}
