package compose

import (
	"context"
	"fmt"
	"time"

	"github.com/imamik/redstack/internal/config"
	"github.com/imamik/redstack/internal/graph"
	"github.com/imamik/redstack/internal/provisioning"
	"github.com/imamik/redstack/internal/resource"
)

// Plan is the outcome of a successful composition pass.
type Plan struct {
	Stack     string
	Graph     *graph.Graph
	Network   string
	Balancer  string
	Imported  []string
	Endpoints []string
	Warnings  []string
}

// Option configures a Composer.
type Option func(*Composer)

// WithObserver routes composition events to o.
func WithObserver(o provisioning.Observer) Option {
	return func(c *Composer) { c.observer = o }
}

// WithMetrics records composition metrics on m.
func WithMetrics(m *provisioning.Metrics) Option {
	return func(c *Composer) { c.metrics = m }
}

// WithLocator enables the imports phase, which checks that every imported
// reference exists.
func WithLocator(l provisioning.ResourceLocator) Option {
	return func(c *Composer) { c.locator = l }
}

// Composer builds plans from a single ResourceContext.
type Composer struct {
	input    config.ResourceContext
	observer provisioning.Observer
	metrics  *provisioning.Metrics
	locator  provisioning.ResourceLocator
}

// New creates a Composer. Defaults are applied to a copy of input.
func New(input config.ResourceContext, opts ...Option) *Composer {
	c := &Composer{
		input:    input.WithDefaults(),
		observer: provisioning.NewDiscardObserver(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Input returns the effective input after defaults.
func (c *Composer) Input() config.ResourceContext {
	return c.input
}

// Phases returns the ordered phases of one composition pass.
func (c *Composer) Phases() []provisioning.Phase {
	phases := []provisioning.Phase{
		provisioning.NewValidationPhase(),
		&NetworkPhase{},
	}
	if c.locator != nil {
		phases = append(phases, provisioning.NewVerifyImportsPhase())
	}
	return append(phases,
		&StoragePhase{},
		&IdentityPhase{},
		&LoggingPhase{},
		&ComputePhase{},
		&VolumesPhase{},
		&SecretsPhase{},
		&SecurityPhase{},
		&HealthPhase{},
		&ScalingPhase{},
		&ResolvePhase{},
	)
}

// Compose runs every phase against a fresh graph. On any error the graph is
// discarded and only the error is returned.
func (c *Composer) Compose(ctx context.Context) (plan *Plan, err error) {
	start := time.Now()
	defer func() {
		c.metrics.ObserveCompose(err, time.Since(start))
	}()

	g := graph.New(graph.WithResolveHook(c.resolveHook()))
	pctx := provisioning.NewContext(ctx, c.input, g,
		provisioning.WithObserver(c.observer),
		provisioning.WithMetrics(c.metrics),
		provisioning.WithLocator(c.locator),
	)

	if err := provisioning.RunPhases(pctx, c.Phases()); err != nil {
		return nil, fmt.Errorf("compose %s: %w", c.input.StackName, err)
	}

	nodes := make([]*resource.Node, 0, g.Len())
	for _, name := range g.Names() {
		if n, ok := g.Node(name); ok {
			nodes = append(nodes, n)
		}
	}
	c.metrics.RecordPlan(nodes)

	return &Plan{
		Stack:     c.input.StackName,
		Graph:     g,
		Network:   pctx.State.Network,
		Balancer:  pctx.State.LoadBalancer,
		Imported:  pctx.State.Imported,
		Endpoints: pctx.State.Endpoints,
		Warnings:  pctx.State.Warnings,
	}, nil
}

func (c *Composer) resolveHook() graph.ResolveHook {
	return func(n *resource.Node, err error) {
		if err != nil {
			provisioning.LogNodeFailed(c.observer, string(n.Kind), n.Name, err)
			return
		}
		provisioning.LogNodeResolved(c.observer, string(n.Kind), n.Name)
	}
}

// Compose is a convenience wrapper around New(input).Compose(ctx).
func Compose(ctx context.Context, input config.ResourceContext, opts ...Option) (*Plan, error) {
	return New(input, opts...).Compose(ctx)
}
