package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/redstack/cmd/redstack/handlers"
)

// Synth returns the command that writes the plan document.
func Synth(opts *handlers.Options) *cobra.Command {
	var (
		format  string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Compose the deployment and write the plan document",
		Long: `Compose the deployment and write the plan document.

The document lists every resource in dependency order together with the
imported references it relies on. Identical input always produces identical
output. The format defaults to the extension of --out, or JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Synth(cmd.Context(), *opts, format, outPath)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: json, yaml or hcl")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Output file (default: stdout)")

	return cmd
}
