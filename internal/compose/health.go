package compose

import (
	"errors"

	"github.com/imamik/redstack/internal/catalog"
	"github.com/imamik/redstack/internal/graph"
	"github.com/imamik/redstack/internal/provisioning"
	"github.com/imamik/redstack/internal/resource"
)

var errNoTargetGroup = errors.New("service has no target group")

// HealthPhase attaches a liveness probe to each container and the health
// check path to the service's target group.
type HealthPhase struct{}

// Name implements provisioning.Phase.
func (p *HealthPhase) Name() string { return "health" }

// Provision implements provisioning.Phase.
func (p *HealthPhase) Provision(ctx *provisioning.Context) error {
	for _, c := range catalog.Containers(ctx.Input.ImageDirectory) {
		if err := ctx.Graph.Extend(c.Name, "health", nil, set(resource.Attributes{"healthCheck": c.HealthCheck})); err != nil {
			return err
		}
	}

	return ctx.Graph.Extend(catalog.NameService, "health:target-group", nil, healthCheckPath(catalog.HealthCheckPath))
}

func healthCheckPath(path string) graph.Builder {
	return func(_ graph.Reader, attrs resource.Attributes) error {
		tg, ok := attrs["targetGroup"].(resource.TargetGroup)
		if !ok {
			return errNoTargetGroup
		}
		tg.HealthCheckPath = path
		attrs["targetGroup"] = tg
		return nil
	}
}
