package compose

import (
	"github.com/imamik/redstack/internal/catalog"
	"github.com/imamik/redstack/internal/provisioning"
	"github.com/imamik/redstack/internal/resource"
	"github.com/imamik/redstack/internal/util/labels"
)

// LoggingPhase registers the log group both containers write to.
type LoggingPhase struct{}

// Name implements provisioning.Phase.
func (p *LoggingPhase) Name() string { return "logging" }

// Provision implements provisioning.Phase.
func (p *LoggingPhase) Provision(ctx *provisioning.Context) error {
	lg := resource.NewCreated(catalog.NameLogGroup, resource.KindLogGroup, resource.Attributes{
		"logGroupName":   catalog.LogGroupName,
		"retentionDays":  catalog.LogRetentionDays,
		"removalPolicy":  "DESTROY",
		resource.AttrARN: resource.Output(catalog.NameLogGroup, resource.AttrARN),
	})
	return register(ctx, p.Name(), labels.RoleLogging, lg)
}
