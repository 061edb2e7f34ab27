package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/redstack/cmd/redstack/handlers"
	"github.com/imamik/redstack/internal/config"
)

// Init returns the command for interactively creating a context file.
func Init() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a context file",
		Long: `Interactively create a context file.

The wizard asks for the stack name and whether to create or reuse the
network and the load balancer, and whether to add VPC endpoints.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", config.DefaultContextFilename, "Output file path")

	return cmd
}
