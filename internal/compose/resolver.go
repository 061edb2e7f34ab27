package compose

import (
	"github.com/imamik/redstack/internal/catalog"
	"github.com/imamik/redstack/internal/config"
	"github.com/imamik/redstack/internal/resource"
)

// Decision is the outcome of the import-or-create choice for one category.
type Decision struct {
	Node *resource.Node
}

// Imported reports whether the decision produced a reference-only node.
func (d Decision) Imported() bool {
	return d.Node.IsImported()
}

// ResolveNetwork decides import-or-create for the network. A created
// network spans catalog.MaxAZs availability zones.
func ResolveNetwork(rc config.ResourceContext) Decision {
	if rc.ImportsVpc() {
		return Decision{Node: resource.NewImported(catalog.NameExistingVpc, resource.KindNetwork, rc.ExistingVpcID)}
	}
	return Decision{Node: resource.NewCreated(catalog.NameVpc, resource.KindNetwork, resource.Attributes{
		"maxAzs": catalog.MaxAZs,
	})}
}

// ResolveLoadBalancer decides import-or-create for the load balancer. A
// created balancer is internet facing and lives in network.
func ResolveLoadBalancer(rc config.ResourceContext, network string) Decision {
	if rc.ImportsAlb() {
		return Decision{Node: resource.NewImported(catalog.NameExistingAlb, resource.KindLoadBalancer, rc.ExistingAlbArn)}
	}
	n := resource.NewCreated(catalog.NameAlb, resource.KindLoadBalancer, resource.Attributes{
		"internetFacing":           true,
		resource.AttrARN:           resource.Output(catalog.NameAlb, resource.AttrARN),
		resource.AttrSecurityGroup: resource.Output(catalog.NameAlb, resource.AttrSecurityGroup),
	})
	n.DependsOn = []string{network}
	return Decision{Node: n}
}

// ExpandEndpoints returns one Endpoint node per catalog entry, each
// depending on network, or nothing when the flag is off.
func ExpandEndpoints(rc config.ResourceContext, network string) []*resource.Node {
	if !rc.CreateVpcEndpoint {
		return nil
	}

	specs := catalog.Endpoints()
	nodes := make([]*resource.Node, 0, len(specs))
	for _, ep := range specs {
		attrs := resource.Attributes{
			"service": ep.Service,
			"type":    ep.Type,
		}
		if ep.Type == catalog.EndpointInterface {
			attrs["privateDnsEnabled"] = true
		}
		n := resource.NewCreated(ep.Name, resource.KindEndpoint, attrs)
		n.DependsOn = []string{network}
		nodes = append(nodes, n)
	}
	return nodes
}
