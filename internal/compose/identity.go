package compose

import (
	"github.com/imamik/redstack/internal/catalog"
	"github.com/imamik/redstack/internal/provisioning"
	"github.com/imamik/redstack/internal/resource"
	"github.com/imamik/redstack/internal/util/labels"
)

// IdentityPhase registers the task execution role and the task role.
type IdentityPhase struct{}

// Name implements provisioning.Phase.
func (p *IdentityPhase) Name() string { return "identity" }

// Provision implements provisioning.Phase.
func (p *IdentityPhase) Provision(ctx *provisioning.Context) error {
	exec := resource.NewCreated(catalog.NameExecutionRole, resource.KindIdentityRole, resource.Attributes{
		"assumedBy":       catalog.TaskExecutionPrincipal,
		"managedPolicies": []string{"service-role/AmazonECSTaskExecutionRolePolicy"},
		resource.AttrARN:  resource.Output(catalog.NameExecutionRole, resource.AttrARN),
	})
	if err := register(ctx, p.Name(), labels.RoleIdentity, exec); err != nil {
		return err
	}

	task := resource.NewCreated(catalog.NameTaskRole, resource.KindIdentityRole, resource.Attributes{
		"assumedBy":      catalog.TaskExecutionPrincipal,
		resource.AttrARN: resource.Output(catalog.NameTaskRole, resource.AttrARN),
	})
	return register(ctx, p.Name(), labels.RoleIdentity, task)
}
