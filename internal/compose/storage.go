package compose

import (
	"github.com/imamik/redstack/internal/catalog"
	"github.com/imamik/redstack/internal/provisioning"
	"github.com/imamik/redstack/internal/resource"
	"github.com/imamik/redstack/internal/util/labels"
)

// StoragePhase registers the shared file system with its own security group.
type StoragePhase struct{}

// Name implements provisioning.Phase.
func (p *StoragePhase) Name() string { return "storage" }

// Provision implements provisioning.Phase.
func (p *StoragePhase) Provision(ctx *provisioning.Context) error {
	fs := resource.NewCreated(catalog.NameFileSystem, resource.KindFileSystem, resource.Attributes{
		"encrypted":                true,
		"automaticBackups":         true,
		"lifecyclePolicy":          "AFTER_7_DAYS",
		"removalPolicy":            "DESTROY",
		"allowAllOutbound":         true,
		resource.AttrARN:           resource.Output(catalog.NameFileSystem, resource.AttrARN),
		resource.AttrSecurityGroup: resource.Output(catalog.NameFileSystem, resource.AttrSecurityGroup),
	})
	fs.DependsOn = []string{ctx.State.Network}

	return register(ctx, p.Name(), labels.RoleStorage, fs, copyAttr("vpcId", ctx.State.Network, resource.AttrID))
}
