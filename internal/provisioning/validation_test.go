package provisioning

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/redstack/internal/config"
	"github.com/imamik/redstack/internal/graph"
	"github.com/imamik/redstack/internal/resource"
)

func TestValidationPhase_Name(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "validation", NewValidationPhase().Name())
}

func TestValidationPhase_Valid(t *testing.T) {
	t.Parallel()
	observer := NewMockObserver()
	ctx := NewContext(context.Background(), config.ResourceContext{ExistingVpcID: "vpc-1"}, graph.New(), WithObserver(observer))

	require.NoError(t, NewValidationPhase().Provision(ctx))
	assert.Empty(t, observer.ofType(EventValidationError))
	assert.Empty(t, ctx.State.Warnings)
}

func TestValidationPhase_WarningsDoNotFail(t *testing.T) {
	t.Parallel()
	observer := NewMockObserver()
	ctx := NewContext(context.Background(), config.ResourceContext{ExistingAlbArn: "arn:lb/123"}, graph.New(), WithObserver(observer))

	require.NoError(t, NewValidationPhase().Provision(ctx))
	assert.Len(t, observer.ofType(EventValidationWarning), 1)
	require.Len(t, ctx.State.Warnings, 1)
	assert.Contains(t, ctx.State.Warnings[0], config.KeyExistingAlbArn)
}

func TestValidationPhase_ErrorsAreConfigurationErrors(t *testing.T) {
	t.Parallel()
	observer := NewMockObserver()
	ctx := NewContext(context.Background(), config.ResourceContext{ExistingVpcID: "network-1", ExistingAlbArn: "lb"}, graph.New(), WithObserver(observer))

	err := NewValidationPhase().Provision(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, resource.ErrConfiguration)
	assert.Contains(t, err.Error(), "network-1")
	assert.Len(t, observer.ofType(EventValidationError), 2)
}
