package wizard

import (
	"context"
	"fmt"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	StackName string

	NetworkMode   string
	ExistingVpcID string

	LoadBalancerMode string
	ExistingAlbArn   string

	CreateVpcEndpoint bool
	ImageDirectory    string
}

// RunWizard runs the interactive context wizard.
// The context is used for cancellation support (e.g., Ctrl+C).
func RunWizard(ctx context.Context) (*Result, error) {
	result := &Result{}

	if err := runStackGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("stack: %w", err)
	}

	if err := runNetworkGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}

	if err := runLoadBalancerGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("load balancer: %w", err)
	}

	if err := runEndpointsGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("endpoints: %w", err)
	}

	return result, nil
}
