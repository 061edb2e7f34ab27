package handlers

import (
	"context"
	"fmt"

	"github.com/imamik/redstack/internal/config"
	"github.com/imamik/redstack/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	fileExists       = wizard.FileExists
	confirmOverwrite = wizard.ConfirmOverwrite
	runWizard        = wizard.RunWizard
	writeContext     = wizard.WriteContext
)

// Init runs the interactive wizard and writes the resulting context file.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		ok, err := confirmOverwrite(outputPath)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(stdout, "Aborted.")
			return nil
		}
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	rc := wizard.BuildContext(result)
	if err := writeContext(rc, outputPath); err != nil {
		return fmt.Errorf("failed to write context: %w", err)
	}

	printInitSuccess(outputPath, rc)
	return nil
}

func printWelcome() {
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "redstack - Redmine on ECS")
	fmt.Fprintln(stdout, "=========================")
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "This wizard decides which parts of the network to reuse.")
	fmt.Fprintln(stdout)
}

func printInitSuccess(outputPath string, rc config.ResourceContext) {
	rc = rc.WithDefaults()
	network, balancer := "create", "create"
	if rc.ImportsVpc() {
		network = "import " + rc.ExistingVpcID
	}
	if rc.ImportsAlb() {
		balancer = "import " + rc.ExistingAlbArn
	}

	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Context saved!")
	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "  File:          %s\n", outputPath)
	fmt.Fprintf(stdout, "  Stack:         %s\n", rc.StackName)
	fmt.Fprintf(stdout, "  Network:       %s\n", network)
	fmt.Fprintf(stdout, "  Load balancer: %s\n", balancer)
	fmt.Fprintf(stdout, "  Endpoints:     %t\n", rc.CreateVpcEndpoint)
	fmt.Fprintln(stdout)
	fmt.Fprintln(stdout, "Next Steps")
	fmt.Fprintln(stdout, "----------")
	fmt.Fprintln(stdout, "  redstack plan")
	fmt.Fprintln(stdout, "  redstack synth --out plan.json")
	fmt.Fprintln(stdout)
}
