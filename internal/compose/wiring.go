package compose

import (
	"fmt"

	"github.com/imamik/redstack/internal/graph"
	"github.com/imamik/redstack/internal/provisioning"
	"github.com/imamik/redstack/internal/resource"
	"github.com/imamik/redstack/internal/util/labels"
)

// register adds n to the graph. Created nodes are tagged; imported nodes are
// recorded on the state as reference-only.
func register(ctx *provisioning.Context, phase, role string, n *resource.Node, builders ...graph.Builder) error {
	if n.IsImported() {
		if err := ctx.Graph.Register(n); err != nil {
			return err
		}
		id, _ := n.Attributes.String(resource.AttrID)
		ctx.State.Imported = append(ctx.State.Imported, n.Name)
		provisioning.LogNodeImported(ctx.Observer, phase, string(n.Kind), n.Name, id)
		return nil
	}

	n = n.Clone()
	n.Attributes[resource.AttrTags] = labels.NewLabelBuilder(ctx.Input.StackName).
		WithRole(role).
		WithComponent(n.Name).
		Build()
	if err := ctx.Graph.Register(n, builders...); err != nil {
		return err
	}
	provisioning.LogNodeRegistered(ctx.Observer, phase, string(n.Kind), n.Name)
	return nil
}

// ensure registers n unless a node of the same kind already exists under
// its name.
func ensure(ctx *provisioning.Context, phase, role string, n *resource.Node, builders ...graph.Builder) error {
	if existing, ok := ctx.Graph.Node(n.Name); ok {
		if existing.Kind != n.Kind {
			return &resource.DuplicateNodeError{Name: n.Name}
		}
		return nil
	}
	return register(ctx, phase, role, n, builders...)
}

// ref reads an output reference from a dependency.
func ref(r graph.Reader, name, key string) (resource.Ref, error) {
	v, err := r.Attribute(name, key)
	if err != nil {
		return resource.Ref{}, err
	}
	out, ok := v.(resource.Ref)
	if !ok {
		return resource.Ref{}, fmt.Errorf("%s.%s is %T, not an output reference", name, key, v)
	}
	return out, nil
}

// copyAttr stores attribute attr of node under key.
func copyAttr(key, node, attr string) graph.Builder {
	return func(r graph.Reader, attrs resource.Attributes) error {
		v, err := r.Attribute(node, attr)
		if err != nil {
			return err
		}
		attrs[key] = v
		return nil
	}
}

// set stores fixed values.
func set(values resource.Attributes) graph.Builder {
	return func(_ graph.Reader, attrs resource.Attributes) error {
		for k, v := range values {
			attrs[k] = v
		}
		return nil
	}
}

// appendGrant adds a policy grant on the arn of target.
func appendGrant(actions []string, target string) graph.Builder {
	return func(r graph.Reader, attrs resource.Attributes) error {
		arn, err := ref(r, target, resource.AttrARN)
		if err != nil {
			return err
		}
		grants, _ := attrs["grants"].([]resource.PolicyGrant)
		attrs["grants"] = append(grants, resource.PolicyGrant{Actions: actions, Resource: arn})
		return nil
	}
}
