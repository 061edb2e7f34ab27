package labels

import (
	"maps"
	"strings"
)

// Standard tag keys.
const (
	// KeyStack identifies which stack a resource belongs to
	KeyStack = "redstack.io/stack"

	// KeyRole identifies the part of the topology a resource serves
	KeyRole = "redstack.io/role"

	// KeyManagedBy identifies the management system
	KeyManagedBy = "redstack.io/managed-by"

	// KeyComponent names the logical node inside the plan
	KeyComponent = "redstack.io/component"
)

// Role values
const (
	RoleNetwork      = "network"
	RoleLoadBalancer = "load-balancer"
	RoleEndpoint     = "endpoint"
	RoleStorage      = "storage"
	RoleIdentity     = "identity"
	RoleLogging      = "logging"
	RoleCompute      = "compute"
	RoleSecret       = "secret"
	RoleSecurity     = "security"
)

// ManagedByRedstack is the default manager value.
const ManagedByRedstack = "redstack"

// LabelBuilder provides a fluent interface for building resource tags.
type LabelBuilder struct {
	labels map[string]string
}

// NewLabelBuilder creates a new builder with the stack name pre-set.
func NewLabelBuilder(stack string) *LabelBuilder {
	return &LabelBuilder{
		labels: map[string]string{
			KeyStack:     stack,
			KeyManagedBy: ManagedByRedstack,
		},
	}
}

// WithRole sets the role tag. An empty role is ignored.
func (lb *LabelBuilder) WithRole(role string) *LabelBuilder {
	if role != "" {
		lb.labels[KeyRole] = role
	}
	return lb
}

// WithComponent sets the component tag to a logical node name.
func (lb *LabelBuilder) WithComponent(name string) *LabelBuilder {
	if name != "" {
		lb.labels[KeyComponent] = name
	}
	return lb
}

// WithManagedBy sets who manages this resource.
func (lb *LabelBuilder) WithManagedBy(manager string) *LabelBuilder {
	lb.labels[KeyManagedBy] = manager
	return lb
}

// Merge adds all labels from the provided map. Keys in the redstack.io
// namespace are not overwritten.
func (lb *LabelBuilder) Merge(extra map[string]string) *LabelBuilder {
	for k, v := range extra {
		if _, reserved := lb.labels[k]; reserved && strings.HasPrefix(k, "redstack.io/") {
			continue
		}
		lb.labels[k] = v
	}
	return lb
}

// Build returns a copy of the labels map.
func (lb *LabelBuilder) Build() map[string]string {
	return maps.Clone(lb.labels)
}

// SelectorForStack returns a tag filter matching every resource of a stack.
func SelectorForStack(stack string) string {
	return KeyStack + "=" + stack
}
