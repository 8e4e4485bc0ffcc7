// Package catalog implements `greet catalog`, which exports the languages
// and proverbs the tool knows about.
package catalog

import (
	"github.com/spf13/cobra"

	"github.com/flarebyte/greet/internal/catalogfile"
	"github.com/flarebyte/greet/internal/lang"
	"github.com/flarebyte/greet/internal/proverb"
)

// NewCmd returns the catalog command.
func NewCmd() *cobra.Command {
	var (
		format       string
		withProverbs bool
		language     string
	)
	cmd := &cobra.Command{
		Use:           "catalog",
		Short:         "Print the supported languages (and proverbs)",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := catalogfile.Build(withProverbs)
			if cmd.Flags().Changed("language") {
				if err := lang.CheckFilter([]string{language}); err != nil {
					return err
				}
				l, err := lang.FindByName(language)
				if err != nil {
					return err
				}
				doc.Languages = []lang.Language{l}
				if withProverbs {
					doc.Proverbs = proverb.ForLanguage(l.Name)
				}
			}
			return catalogfile.Write(cmd.OutOrStdout(), doc, format)
		},
	}
	cmd.Flags().StringVar(&format, "format", catalogfile.FormatYAML, "Output format: yaml, json or text")
	cmd.Flags().BoolVar(&withProverbs, "proverbs", false, "Include the proverbs")
	cmd.Flags().StringVar(&language, "language", "", "Only export one language")
	return cmd
}
