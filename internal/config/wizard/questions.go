package wizard

import (
	"context"
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/imamik/redstack/internal/catalog"
	"github.com/imamik/redstack/internal/config"
)

var (
	stackNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]{0,127}$`)
	vpcIDRegex     = regexp.MustCompile(`^vpc-[0-9a-f]+$`)
)

// runStackGroup prompts for the stack name and image directory.
func runStackGroup(ctx context.Context, result *Result) error {
	result.StackName = config.DefaultStackName
	result.ImageDirectory = catalog.DefaultImageDirectory

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Stack Name").
				Description("Used for tags and plan identifiers").
				Placeholder(config.DefaultStackName).
				Value(&result.StackName).
				Validate(validateStackName),
			huh.NewInput().
				Title("Image Directory").
				Description("Directory holding RedmineDockerfile and PostgresDockerfile").
				Value(&result.ImageDirectory),
		).Title("Stack"),
	).RunWithContext(ctx)
}

// runNetworkGroup asks whether to import the VPC and, if so, for its id.
func runNetworkGroup(ctx context.Context, result *Result) error {
	result.NetworkMode = ModeCreate

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Network").
				Options(ModesToOptions(NetworkModes)...).
				Value(&result.NetworkMode),
		).Title("Network"),
	).RunWithContext(ctx)
	if err != nil || result.NetworkMode != ModeImport {
		return err
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Existing VPC ID").
				Placeholder("vpc-0123abcd").
				Value(&result.ExistingVpcID).
				Validate(validateVpcID),
		).Title("Existing Network"),
	).RunWithContext(ctx)
}

// runLoadBalancerGroup asks whether to import the load balancer and, if so,
// for its ARN.
func runLoadBalancerGroup(ctx context.Context, result *Result) error {
	result.LoadBalancerMode = ModeCreate

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Load Balancer").
				Options(ModesToOptions(LoadBalancerModes)...).
				Value(&result.LoadBalancerMode),
		).Title("Load Balancer"),
	).RunWithContext(ctx)
	if err != nil || result.LoadBalancerMode != ModeImport {
		return err
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Existing Load Balancer ARN").
				Placeholder("arn:aws:elasticloadbalancing:...").
				Value(&result.ExistingAlbArn).
				Validate(validateAlbArn),
		).Title("Existing Load Balancer"),
	).RunWithContext(ctx)
}

// runEndpointsGroup prompts for the private service endpoints.
func runEndpointsGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Create VPC Endpoints").
				Description("Secrets Manager, ECR, ECR Docker, CloudWatch Logs and S3").
				Value(&result.CreateVpcEndpoint),
		).Title("Private Endpoints"),
	).RunWithContext(ctx)
}

func validateStackName(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errStackNameRequired
	}
	if !stackNameRegex.MatchString(s) {
		return errStackNameInvalid
	}
	return nil
}

func validateVpcID(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errVpcIDRequired
	}
	if !vpcIDRegex.MatchString(s) {
		return errVpcIDInvalid
	}
	return nil
}

func validateAlbArn(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errAlbArnRequired
	}
	if !strings.HasPrefix(s, "arn:") {
		return errAlbArnInvalid
	}
	return nil
}
