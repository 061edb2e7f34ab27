package config

import "github.com/imamik/redstack/internal/catalog"

// DefaultStackName is used when the context file does not name the stack.
const DefaultStackName = "RedmineStack"

// ResourceContext is the composition input.
type ResourceContext struct {
	// StackName scopes tags and plan identifiers.
	StackName string `yaml:"stackName,omitempty"`

	// ExistingVpcID imports a network instead of creating one.
	ExistingVpcID string `yaml:"existingVpcId,omitempty"`

	// ExistingAlbArn imports a load balancer instead of creating one.
	ExistingAlbArn string `yaml:"existingAlbArn,omitempty"`

	// CreateVpcEndpoint adds the private service endpoints to the network.
	CreateVpcEndpoint bool `yaml:"createVpcEndpoint"`

	// ImageDirectory holds the Dockerfiles of both container images.
	ImageDirectory string `yaml:"imageDirectory,omitempty"`
}

// WithDefaults returns a copy with empty settings filled in.
func (c ResourceContext) WithDefaults() ResourceContext {
	if c.StackName == "" {
		c.StackName = DefaultStackName
	}
	if c.ImageDirectory == "" {
		c.ImageDirectory = catalog.DefaultImageDirectory
	}
	return c
}

// ImportsVpc reports whether the network is imported.
func (c ResourceContext) ImportsVpc() bool {
	return c.ExistingVpcID != ""
}

// ImportsAlb reports whether the load balancer is imported.
func (c ResourceContext) ImportsAlb() bool {
	return c.ExistingAlbArn != ""
}
