package wizard

import "github.com/charmbracelet/huh"

// Provenance choices offered for the network and the load balancer.
const (
	ModeCreate = "create"
	ModeImport = "import"
)

// ModeOption is one import-or-create choice.
type ModeOption struct {
	Value       string
	Label       string
	Description string
}

// NetworkModes are the choices for the network.
var NetworkModes = []ModeOption{
	{Value: ModeCreate, Label: "Create", Description: "New VPC across 2 availability zones"},
	{Value: ModeImport, Label: "Import", Description: "Reuse an existing VPC by id"},
}

// LoadBalancerModes are the choices for the load balancer.
var LoadBalancerModes = []ModeOption{
	{Value: ModeCreate, Label: "Create", Description: "New internet-facing Application Load Balancer"},
	{Value: ModeImport, Label: "Import", Description: "Reuse an existing load balancer by ARN"},
}

// ModesToOptions converts mode choices to huh select options.
func ModesToOptions(modes []ModeOption) []huh.Option[string] {
	opts := make([]huh.Option[string], len(modes))
	for i, m := range modes {
		opts[i] = huh.NewOption(m.Label+" - "+m.Description, m.Value)
	}
	return opts
}
