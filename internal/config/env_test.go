package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/redstack/internal/resource"
)

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvExistingAlbArn, " arn:lb/123 ")
	t.Setenv(EnvCreateVpcEndpoint, "true")
	t.Setenv(EnvExistingVpcID, "")

	rc, err := ApplyEnv(ResourceContext{ExistingVpcID: "vpc-1"})
	require.NoError(t, err)

	assert.Equal(t, "arn:lb/123", rc.ExistingAlbArn)
	assert.True(t, rc.CreateVpcEndpoint)
	assert.Equal(t, "vpc-1", rc.ExistingVpcID, "empty variables do not clear values")
}

func TestApplyEnv_InvalidBool(t *testing.T) {
	t.Setenv(EnvCreateVpcEndpoint, "sometimes")

	_, err := ApplyEnv(ResourceContext{})
	require.Error(t, err)
	assert.ErrorIs(t, err, resource.ErrConfiguration)
	assert.Contains(t, err.Error(), EnvCreateVpcEndpoint)
}

func TestApplyOverrides(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		overrides map[string]string
		want      ResourceContext
		wantErr   string
	}{
		{
			name:      "sets values",
			overrides: map[string]string{KeyExistingVpcID: "vpc-9", KeyCreateVpcEndpoint: "1"},
			want:      ResourceContext{StackName: "S", ExistingVpcID: "vpc-9", CreateVpcEndpoint: true},
		},
		{
			name:      "empty clears",
			overrides: map[string]string{KeyStackName: ""},
			want:      ResourceContext{},
		},
		{
			name:      "unknown key",
			overrides: map[string]string{"vpc": "vpc-1"},
			wantErr:   "unknown setting",
		},
		{
			name:      "bad bool",
			overrides: map[string]string{KeyCreateVpcEndpoint: "maybe"},
			wantErr:   "invalid boolean",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ApplyOverrides(ResourceContext{StackName: "S"}, tt.overrides)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorIs(t, err, resource.ErrConfiguration)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
