package compose

import (
	"fmt"

	"github.com/imamik/redstack/internal/provisioning"
)

// ResolvePhase resolves every node in dependency order.
type ResolvePhase struct{}

// Name implements provisioning.Phase.
func (p *ResolvePhase) Name() string { return "resolve" }

// Provision implements provisioning.Phase.
func (p *ResolvePhase) Provision(ctx *provisioning.Context) error {
	if err := ctx.Graph.ResolveAll(); err != nil {
		return err
	}
	if pending := ctx.Graph.Pending(); len(pending) > 0 {
		return fmt.Errorf("%d node(s) left unresolved: %v", len(pending), pending)
	}
	ctx.Observer.Printf("[%s] %d nodes resolved", p.Name(), ctx.Graph.Len())
	return nil
}
