package compose

import (
	"github.com/imamik/redstack/internal/catalog"
	"github.com/imamik/redstack/internal/provisioning"
	"github.com/imamik/redstack/internal/resource"
	"github.com/imamik/redstack/internal/util/labels"
	"github.com/imamik/redstack/internal/util/naming"
)

// SecurityPhase lets the service reach the file system over NFS and grants
// the task role read-write access to it.
type SecurityPhase struct{}

// Name implements provisioning.Phase.
func (p *SecurityPhase) Name() string { return "security" }

// Provision implements provisioning.Phase.
func (p *SecurityPhase) Provision(ctx *provisioning.Context) error {
	rule := resource.NewCreated(naming.IngressRule(catalog.NameFileSystem, catalog.NameService), resource.KindSecurityRule, resource.Attributes{
		"source":    catalog.NameService,
		"target":    catalog.NameFileSystem,
		"protocol":  "tcp",
		"port":      catalog.NFSPort,
		"direction": "ingress",
	})
	rule.DependsOn = []string{catalog.NameService, catalog.NameFileSystem}
	if err := ensure(ctx, p.Name(), labels.RoleSecurity, rule,
		copyAttr("sourceSecurityGroupId", catalog.NameService, resource.AttrSecurityGroup),
		copyAttr("targetSecurityGroupId", catalog.NameFileSystem, resource.AttrSecurityGroup),
	); err != nil {
		return err
	}

	return ctx.Graph.Extend(catalog.NameTaskRole, naming.GrantKey(catalog.NameFileSystem),
		[]string{catalog.NameFileSystem}, appendGrant(catalog.FileSystemClientActions(), catalog.NameFileSystem))
}
