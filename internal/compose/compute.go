package compose

import (
	"github.com/imamik/redstack/internal/catalog"
	"github.com/imamik/redstack/internal/graph"
	"github.com/imamik/redstack/internal/provisioning"
	"github.com/imamik/redstack/internal/resource"
	"github.com/imamik/redstack/internal/util/labels"
)

// ComputePhase registers the task definition, its containers and the
// load-balanced service.
type ComputePhase struct{}

// Name implements provisioning.Phase.
func (p *ComputePhase) Name() string { return "compute" }

// Provision implements provisioning.Phase.
func (p *ComputePhase) Provision(ctx *provisioning.Context) error {
	td := resource.NewCreated(catalog.NameTaskDef, resource.KindTaskDefinition, resource.Attributes{
		"compatibility":  "FARGATE",
		"networkMode":    "awsvpc",
		"cpu":            catalog.TaskCPU,
		"memory":         catalog.TaskMemory,
		resource.AttrARN: resource.Output(catalog.NameTaskDef, resource.AttrARN),
	})
	td.DependsOn = []string{catalog.NameExecutionRole, catalog.NameTaskRole}
	if err := register(ctx, p.Name(), labels.RoleCompute, td,
		copyAttr("executionRoleArn", catalog.NameExecutionRole, resource.AttrARN),
		copyAttr("taskRoleArn", catalog.NameTaskRole, resource.AttrARN),
	); err != nil {
		return err
	}

	for _, spec := range catalog.Containers(ctx.Input.ImageDirectory) {
		if err := registerContainer(ctx, p.Name(), spec); err != nil {
			return err
		}
	}

	svc := resource.NewCreated(catalog.NameService, resource.KindService, resource.Attributes{
		"launchType":   "FARGATE",
		"listenerPort": catalog.ListenerPort,
		"targetGroup": resource.TargetGroup{
			Container: catalog.NameRedmineContainer,
			Port:      catalog.AppPort,
			Protocol:  "HTTP",
		},
		resource.AttrSecurityGroup: resource.Output(catalog.NameService, resource.AttrSecurityGroup),
	})
	svc.DependsOn = []string{catalog.NameTaskDef, catalog.NameRedmineContainer, ctx.State.LoadBalancer, ctx.State.Network}
	return register(ctx, p.Name(), labels.RoleCompute, svc,
		copyAttr("taskDefinitionArn", catalog.NameTaskDef, resource.AttrARN),
		copyAttr("loadBalancer", ctx.State.LoadBalancer, resource.AttrID),
		copyAttr("vpcId", ctx.State.Network, resource.AttrID),
	)
}

func registerContainer(ctx *provisioning.Context, phase string, spec catalog.Container) error {
	attrs := resource.Attributes{
		"image":     spec.Image,
		"essential": spec.Essential,
	}
	if len(spec.Environment) > 0 {
		attrs["environment"] = spec.Environment
	}
	if spec.Port != 0 {
		attrs["portMappings"] = []resource.PortMapping{{ContainerPort: spec.Port, Protocol: "tcp"}}
	}

	c := resource.NewCreated(spec.Name, resource.KindContainer, attrs)
	c.DependsOn = []string{catalog.NameTaskDef, catalog.NameLogGroup}

	logging := func(r graph.Reader, attrs resource.Attributes) error {
		group, err := ref(r, catalog.NameLogGroup, resource.AttrID)
		if err != nil {
			return err
		}
		attrs["logging"] = resource.LogDriver{Driver: "awslogs", LogGroup: group, StreamPrefix: spec.StreamPrefix}
		return nil
	}

	return register(ctx, phase, labels.RoleCompute, c,
		copyAttr("taskDefinitionArn", catalog.NameTaskDef, resource.AttrARN),
		logging,
	)
}
