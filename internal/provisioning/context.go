package provisioning

import (
	"context"

	"github.com/imamik/redstack/internal/config"
	"github.com/imamik/redstack/internal/graph"
)

// Context wraps all dependencies and state needed for a composition phase.
type Context struct {
	context.Context
	Input    config.ResourceContext
	Graph    *graph.Graph
	State    *State
	Observer Observer
	Metrics  *Metrics
	Locator  ResourceLocator
}

// ContextOption configures a Context.
type ContextOption func(*Context)

// WithObserver sets the observer. The default discards everything.
func WithObserver(o Observer) ContextOption {
	return func(c *Context) {
		c.Observer = o
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m *Metrics) ContextOption {
	return func(c *Context) {
		c.Metrics = m
	}
}

// WithLocator enables verification of imported references.
func WithLocator(l ResourceLocator) ContextOption {
	return func(c *Context) {
		c.Locator = l
	}
}

// NewContext creates a composition context around g. input is copied.
func NewContext(ctx context.Context, input config.ResourceContext, g *graph.Graph, opts ...ContextOption) *Context {
	c := &Context{
		Context:  ctx,
		Input:    input,
		Graph:    g,
		State:    NewState(),
		Observer: NewDiscardObserver(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
