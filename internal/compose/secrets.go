package compose

import (
	"maps"

	"github.com/imamik/redstack/internal/catalog"
	"github.com/imamik/redstack/internal/graph"
	"github.com/imamik/redstack/internal/provisioning"
	"github.com/imamik/redstack/internal/resource"
	"github.com/imamik/redstack/internal/util/labels"
	"github.com/imamik/redstack/internal/util/naming"
)

// SecretsPhase generates the database credential and binds it into every
// container that needs it. Only references enter the graph.
type SecretsPhase struct{}

// Name implements provisioning.Phase.
func (p *SecretsPhase) Name() string { return "secrets" }

// Provision implements provisioning.Phase.
func (p *SecretsPhase) Provision(ctx *provisioning.Context) error {
	spec := catalog.DatabaseSecret()
	secret := resource.NewCreated(catalog.NameSecret, resource.KindSecret, resource.Attributes{
		"secretName":           spec.ResourceName,
		"secretStringTemplate": spec.Template,
		"generateStringKey":    spec.GenerateKey,
		"excludePunctuation":   spec.ExcludePunct,
		"removalPolicy":        "DESTROY",
		resource.AttrARN:       resource.Output(catalog.NameSecret, resource.AttrARN),
	})
	if err := ensure(ctx, p.Name(), labels.RoleSecret, secret); err != nil {
		return err
	}

	for _, c := range catalog.Containers(ctx.Input.ImageDirectory) {
		if len(c.Credentials) == 0 {
			continue
		}
		if err := ctx.Graph.Extend(c.Name, "secrets", []string{catalog.NameSecret}, bindSecrets(c.Credentials)); err != nil {
			return err
		}
	}

	return ctx.Graph.Extend(catalog.NameExecutionRole, naming.GrantKey(catalog.NameSecret),
		[]string{catalog.NameSecret}, appendGrant(catalog.SecretReadActions(), catalog.NameSecret))
}

// bindSecrets maps environment variables to fields of the credential.
func bindSecrets(fields map[string]string) graph.Builder {
	return func(r graph.Reader, attrs resource.Attributes) error {
		if _, err := r.Attribute(catalog.NameSecret, resource.AttrARN); err != nil {
			return err
		}
		bound, _ := attrs["secrets"].(map[string]resource.SecretRef)
		bound = maps.Clone(bound)
		if bound == nil {
			bound = make(map[string]resource.SecretRef, len(fields))
		}
		for env, field := range fields {
			bound[env] = resource.SecretRef{Secret: catalog.NameSecret, Field: field}
		}
		attrs["secrets"] = bound
		return nil
	}
}
