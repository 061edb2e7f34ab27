package provisioning

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/redstack/internal/config"
	"github.com/imamik/redstack/internal/graph"
	"github.com/imamik/redstack/internal/resource"
)

type mapLocator struct {
	known map[string]bool
	err   error
	seen  []resource.Kind
}

func (l *mapLocator) Locate(_ context.Context, kind resource.Kind, id string) (bool, error) {
	l.seen = append(l.seen, kind)
	return l.known[id], l.err
}

func importedContext(t *testing.T, loc ResourceLocator) *Context {
	t.Helper()
	g := graph.New()
	require.NoError(t, g.Register(resource.NewImported("ExistingVpc", resource.KindNetwork, "vpc-1")))
	require.NoError(t, g.Register(resource.NewImported("ExistingAlb", resource.KindLoadBalancer, "arn:lb/1")))

	var opts []ContextOption
	if loc != nil {
		opts = append(opts, WithLocator(loc))
	}
	ctx := NewContext(context.Background(), config.ResourceContext{}, g, opts...)
	ctx.State.Imported = []string{"ExistingVpc", "ExistingAlb"}
	return ctx
}

func TestVerifyImportsPhase_NoLocator(t *testing.T) {
	t.Parallel()
	assert.NoError(t, NewVerifyImportsPhase().Provision(importedContext(t, nil)))
}

func TestVerifyImportsPhase_AllFound(t *testing.T) {
	t.Parallel()
	loc := &mapLocator{known: map[string]bool{"vpc-1": true, "arn:lb/1": true}}

	require.NoError(t, NewVerifyImportsPhase().Provision(importedContext(t, loc)))
	assert.Equal(t, []resource.Kind{resource.KindNetwork, resource.KindLoadBalancer}, loc.seen)
}

func TestVerifyImportsPhase_Missing(t *testing.T) {
	t.Parallel()
	loc := &mapLocator{known: map[string]bool{"vpc-1": true}}

	err := NewVerifyImportsPhase().Provision(importedContext(t, loc))

	require.Error(t, err)
	assert.ErrorIs(t, err, resource.ErrConfiguration)
	assert.Contains(t, err.Error(), "arn:lb/1")
	assert.NotContains(t, err.Error(), "vpc-1")
}

func TestVerifyImportsPhase_LocatorError(t *testing.T) {
	t.Parallel()
	boom := errors.New("inventory unreadable")
	loc := &mapLocator{err: boom}

	err := NewVerifyImportsPhase().Provision(importedContext(t, loc))
	assert.ErrorIs(t, err, boom)
}
