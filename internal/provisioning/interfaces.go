package provisioning

import (
	"context"

	"github.com/imamik/redstack/internal/resource"
)

// Phase defines the interface for a composition phase.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Provision executes the logic of this phase.
	Provision(ctx *Context) error
}

// ResourceLocator verifies that an imported reference points at a live
// resource. The composer itself never looks anything up; a locator is only
// consulted when one is configured.
type ResourceLocator interface {
	// Locate reports whether a resource of the given kind exists under id.
	Locate(ctx context.Context, kind resource.Kind, id string) (bool, error)
}

// PhaseFunc adapts a function to the Phase interface.
type PhaseFunc struct {
	PhaseName string
	Fn        func(ctx *Context) error
}

// Name implements Phase.
func (p PhaseFunc) Name() string { return p.PhaseName }

// Provision implements Phase.
func (p PhaseFunc) Provision(ctx *Context) error { return p.Fn(ctx) }
