package root

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/flarebyte/greet/cmd/greet/catalog"
	"github.com/flarebyte/greet/cmd/greet/version"
	"github.com/flarebyte/greet/internal/buildinfo"
)

// NewRootCmd creates the root command for greet. Without a subcommand it
// prints the greetings.
func NewRootCmd() *cobra.Command {
	f := &greetFlags{}
	cmd := &cobra.Command{
		Use:   "greet",
		Short: "Say hello to the world in many languages, with style",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGreet(cmd, f)
		},
		Version:       buildinfo.Summary(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetVersionTemplate("greet {{.Version}}\n")
	f.bind(cmd)

	// Subcommands
	cmd.AddCommand(version.NewCmd())
	cmd.AddCommand(catalog.NewCmd())

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	return ExecuteContext(context.Background(), args, os.Stdout, os.Stderr)
}

// ExecuteContext runs the root command writing to stdout and stderr.
func ExecuteContext(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}
