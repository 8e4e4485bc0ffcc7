package version

import (
	"fmt"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/flarebyte/greet/internal/buildinfo"
)

// NewCmd returns the version command.
func NewCmd() *cobra.Command {
	var flagShort, flagJSON bool
	cmd := &cobra.Command{
		Use:           "version",
		Short:         "Print the CLI version",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagShort || !flagJSON {
				// Exactly one line.
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "greet %s\n", buildinfo.Summary())
				return err
			}

			// JSON goes to stdout, a human friendly line to stderr.
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "greet version: %s\n", buildinfo.Summary())
			out := map[string]any{
				"version":   buildinfo.Version,
				"commit":    buildinfo.Commit,
				"date":      buildinfo.Date,
				"built_by":  buildinfo.BuiltBy,
				"go":        runtime.Version(),
				"go_os":     runtime.GOOS,
				"go_arch":   runtime.GOARCH,
				"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
			}
			return encodeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")
	return cmd
}
