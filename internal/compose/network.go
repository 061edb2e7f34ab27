package compose

import (
	"github.com/imamik/redstack/internal/graph"
	"github.com/imamik/redstack/internal/provisioning"
	"github.com/imamik/redstack/internal/resource"
	"github.com/imamik/redstack/internal/util/labels"
)

// NetworkPhase registers the network, the auxiliary endpoints and the load
// balancer.
type NetworkPhase struct{}

// Name implements provisioning.Phase.
func (p *NetworkPhase) Name() string { return "network" }

// Provision implements provisioning.Phase.
func (p *NetworkPhase) Provision(ctx *provisioning.Context) error {
	network := ResolveNetwork(ctx.Input)
	if err := register(ctx, p.Name(), labels.RoleNetwork, network.Node); err != nil {
		return err
	}
	ctx.State.Network = network.Node.Name

	for _, ep := range ExpandEndpoints(ctx.Input, network.Node.Name) {
		if err := register(ctx, p.Name(), labels.RoleEndpoint, ep, copyAttr("vpcId", network.Node.Name, resource.AttrID)); err != nil {
			return err
		}
		ctx.State.Endpoints = append(ctx.State.Endpoints, ep.Name)
	}

	lb := ResolveLoadBalancer(ctx.Input, network.Node.Name)
	var builders []graph.Builder
	if !lb.Imported() {
		builders = append(builders, copyAttr("vpcId", network.Node.Name, resource.AttrID))
	}
	if err := register(ctx, p.Name(), labels.RoleLoadBalancer, lb.Node, builders...); err != nil {
		return err
	}
	ctx.State.LoadBalancer = lb.Node.Name

	ctx.Observer.Printf("[%s] network=%s load-balancer=%s endpoints=%d",
		p.Name(), ctx.State.Network, ctx.State.LoadBalancer, len(ctx.State.Endpoints))
	return nil
}
