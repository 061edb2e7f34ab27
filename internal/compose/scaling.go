package compose

import (
	"github.com/imamik/redstack/internal/catalog"
	"github.com/imamik/redstack/internal/provisioning"
	"github.com/imamik/redstack/internal/resource"
)

// ScalingPhase sets the desired task count and rolling deployment bounds.
type ScalingPhase struct{}

// Name implements provisioning.Phase.
func (p *ScalingPhase) Name() string { return "scaling" }

// Provision implements provisioning.Phase.
func (p *ScalingPhase) Provision(ctx *provisioning.Context) error {
	return ctx.Graph.Extend(catalog.NameService, "scaling", nil, set(resource.Attributes{
		"desiredCount":      catalog.DesiredCount,
		"minHealthyPercent": catalog.MinHealthyPercent,
		"maxHealthyPercent": catalog.MaxHealthyPercent,
	}))
}
