package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/redstack/cmd/redstack/handlers"
)

// Plan returns the command that prints a plan summary.
func Plan(opts *handlers.Options) *cobra.Command {
	var (
		inventoryPath string
		jsonOutput    bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show what would be created and what would be reused",
		Long: `Compose the deployment and print a summary.

With --inventory, every imported network or load balancer reference is
checked against the given inventory file first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Plan(cmd.Context(), *opts, inventoryPath, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&inventoryPath, "inventory", "", "YAML inventory used to verify imported references")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
