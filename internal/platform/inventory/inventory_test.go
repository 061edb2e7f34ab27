package inventory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/redstack/internal/resource"
)

const sample = `
networks:
  - vpc-0a1b2c3d
loadBalancers:
  - arn:lb/123
`

func TestParse(t *testing.T) {
	t.Parallel()
	inv, err := Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, []string{"vpc-0a1b2c3d"}, inv.Networks)
	assert.Equal(t, []string{"arn:lb/123"}, inv.LoadBalancers)
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()
	inv, err := Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, inv.Networks)
}

func TestParse_UnknownKey(t *testing.T) {
	t.Parallel()
	_, err := Parse([]byte("subnets: [a]\n"))
	assert.ErrorContains(t, err, "subnets")
}

func TestLocate(t *testing.T) {
	t.Parallel()
	inv, err := Parse([]byte(sample))
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name    string
		kind    resource.Kind
		id      string
		want    bool
		wantErr bool
	}{
		{"known network", resource.KindNetwork, "vpc-0a1b2c3d", true, false},
		{"unknown network", resource.KindNetwork, "vpc-ffff", false, false},
		{"known balancer", resource.KindLoadBalancer, "arn:lb/123", true, false},
		{"network id as balancer", resource.KindLoadBalancer, "vpc-0a1b2c3d", false, false},
		{"unsupported kind", resource.KindFileSystem, "fs-1", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := inv.Locate(ctx, tt.kind, tt.id)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "inventory.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	inv, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, inv.Networks, 1)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
