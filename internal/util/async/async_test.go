package async

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

func TestRun_Empty(t *testing.T) {
	t.Parallel()
	assert.NoError(t, Run(context.Background(), nil))
}

func TestRun_AllSucceed(t *testing.T) {
	t.Parallel()
	var count atomic.Int32
	inc := func(context.Context) error {
		count.Add(1)
		return nil
	}

	err := Run(context.Background(), []Task{{"json", inc}, {"yaml", inc}, {"hcl", inc}})
	require.NoError(t, err)
	assert.Equal(t, int32(3), count.Load())
}

func TestRun_CollectsFailuresInOrder(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")
	tasks := []Task{
		{"json", func(context.Context) error {
			time.Sleep(10 * time.Millisecond)
			return boom
		}},
		{"yaml", func(context.Context) error { return nil }},
		{"hcl", func(context.Context) error { return errors.New("denied") }},
	}

	err := Run(context.Background(), tasks)
	require.Error(t, err)

	agg, ok := err.(utilerrors.Aggregate)
	require.True(t, ok)
	require.Len(t, agg.Errors(), 2)
	assert.Equal(t, "json: boom", agg.Errors()[0].Error())
	assert.Equal(t, "hcl: denied", agg.Errors()[1].Error())
	assert.ErrorIs(t, err, boom)
}

func TestRun_RunsConcurrently(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	var started atomic.Int32
	wait := func(ctx context.Context) error {
		if started.Add(1) == 2 {
			close(release)
		}
		select {
		case <-release:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	assert.NoError(t, Run(ctx, []Task{{"a", wait}, {"b", wait}}))
}
