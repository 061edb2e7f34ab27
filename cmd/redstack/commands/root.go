// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing
// and flag binding. Command execution is delegated to handler functions in
// the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/redstack/cmd/redstack/handlers"
)

// Root returns the root command for the redstack CLI.
func Root() *cobra.Command {
	opts := &handlers.Options{}

	cmd := &cobra.Command{
		Use:           "redstack",
		Short:         "Compose Redmine deployments on ECS, EFS and ALB",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "Path to context file (default: redstack.yaml, searched upwards)")
	flags.StringArrayVar(&opts.Set, "set", nil, "Override a context key (key=value, repeatable)")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Log every node as it is registered and resolved")
	flags.StringVar(&opts.MetricsOut, "metrics-out", "", "Write composition metrics to this file in Prometheus text format")

	cmd.AddCommand(Synth(opts))
	cmd.AddCommand(Plan(opts))
	cmd.AddCommand(Publish(opts))
	cmd.AddCommand(Init())

	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
