// Package inventory implements a ResourceLocator backed by a YAML file that
// lists the identifiers of existing resources in an account.
//
//	networks:
//	  - vpc-0a1b2c3d
//	loadBalancers:
//	  - arn:aws:elasticloadbalancing:eu-west-1:123456789012:loadbalancer/app/shared/50dc6c495c0c9188
package inventory

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/imamik/redstack/internal/resource"
)

// Inventory lists known resource identifiers by category.
type Inventory struct {
	Networks      []string `yaml:"networks"`
	LoadBalancers []string `yaml:"loadBalancers"`
}

// LoadFile reads an inventory from path.
func LoadFile(path string) (*Inventory, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read inventory file: %w", err)
	}
	return Parse(data)
}

// Parse decodes an inventory document. Unknown keys are rejected.
func Parse(data []byte) (*Inventory, error) {
	var inv Inventory
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&inv); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse inventory: %w", err)
	}
	return &inv, nil
}

// Locate implements provisioning.ResourceLocator.
func (inv *Inventory) Locate(_ context.Context, kind resource.Kind, id string) (bool, error) {
	switch kind {
	case resource.KindNetwork:
		return slices.Contains(inv.Networks, id), nil
	case resource.KindLoadBalancer:
		return slices.Contains(inv.LoadBalancers, id), nil
	}
	return false, fmt.Errorf("inventory cannot locate resources of kind %s", kind)
}
