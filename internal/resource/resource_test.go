package resource

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreated_SeedsOwnID(t *testing.T) {
	t.Parallel()
	n := NewCreated("FileSystem", KindFileSystem, Attributes{"encrypted": true})

	assert.Equal(t, Created, n.Provenance)
	assert.False(t, n.IsImported())
	assert.Equal(t, Output("FileSystem", AttrID), n.Attributes[AttrID])
	assert.Equal(t, true, n.Attributes["encrypted"])
}

func TestNewCreated_DoesNotAliasInput(t *testing.T) {
	t.Parallel()
	attrs := Attributes{"maxAzs": 2}
	n := NewCreated("Vpc", KindNetwork, attrs)
	n.Attributes["maxAzs"] = 3

	assert.Equal(t, 2, attrs["maxAzs"])
}

func TestNewImported_OnlyCarriesIdentifier(t *testing.T) {
	t.Parallel()
	n := NewImported("ExistingVpc", KindNetwork, "vpc-0abc")

	assert.True(t, n.IsImported())
	assert.Equal(t, Attributes{AttrID: "vpc-0abc"}, n.Attributes)
}

func TestNode_Clone(t *testing.T) {
	t.Parallel()
	n := NewCreated("Alb", KindLoadBalancer, nil)
	n.DependsOn = []string{"Vpc"}

	c := n.Clone()
	c.DependsOn[0] = "Other"
	c.Attributes["internetFacing"] = true

	assert.Equal(t, []string{"Vpc"}, n.DependsOn)
	assert.NotContains(t, n.Attributes, "internetFacing")
}

func TestAttributes_Accessors(t *testing.T) {
	t.Parallel()
	a := Attributes{"name": "x", "port": 2049, "b": true}

	s, ok := a.String("name")
	assert.True(t, ok)
	assert.Equal(t, "x", s)

	i, ok := a.Int("port")
	assert.True(t, ok)
	assert.Equal(t, 2049, i)

	_, ok = a.Int("name")
	assert.False(t, ok)

	assert.Equal(t, []string{"b", "name", "port"}, a.Keys())
}

func TestKind_IsValid(t *testing.T) {
	t.Parallel()
	for _, k := range Kinds() {
		assert.True(t, k.IsValid(), k)
	}
	assert.Len(t, Kinds(), 12)
	assert.False(t, Kind("Bucket").IsValid())
}

func TestRef_JSON(t *testing.T) {
	t.Parallel()
	b, err := json.Marshal(Attributes{"fs": Output("FileSystem", AttrID)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"fs":{"ref":"FileSystem.id"}}`, string(b))
}

func TestSecretRef_JSON(t *testing.T) {
	t.Parallel()
	b, err := json.Marshal(SecretRef{Secret: "PostgresSecret", Field: "password"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"valueFrom":{"secret":"PostgresSecret","field":"password"}}`, string(b))
}

func TestHealthCheck_JSONUsesSeconds(t *testing.T) {
	t.Parallel()
	hc := HealthCheck{
		Command:     []string{"CMD-SHELL", "true"},
		Interval:    30 * time.Second,
		Timeout:     3 * time.Second,
		Retries:     5,
		StartPeriod: 10 * time.Second,
	}
	b, err := json.Marshal(hc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"command":["CMD-SHELL","true"],"intervalSeconds":30,"timeoutSeconds":3,"retries":5,"startPeriodSeconds":10}`, string(b))
}

func TestErrorTaxonomy(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		err   error
		class error
		text  string
	}{
		{"configuration", &ConfigurationError{Field: "existingVpcId", Message: "bad"}, ErrConfiguration, "existingVpcId"},
		{"duplicate", &DuplicateNodeError{Name: "Vpc"}, ErrDependency, `"Vpc"`},
		{"dangling", &DanglingReferenceError{From: "Alb", To: "Vpc", Missing: "Vpc"}, ErrDependency, `"Vpc"`},
		{"cycle", &CycleError{Path: []string{"a", "b", "a"}}, ErrDependency, "a -> b -> a"},
		{"unresolved", &UnresolvedReferenceError{Name: "Vpc", Attribute: "id", State: "Unresolved"}, ErrConstruction, "Vpc.id"},
		{"construction", &ConstructionError{Name: "Service", Err: errors.New("boom")}, ErrConstruction, "Service"},
		{"incomplete", &IncompleteGraphError{Pending: []string{"Vpc"}}, ErrConstruction, "Vpc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			wrapped := fmt.Errorf("compose: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.class)
			assert.Contains(t, wrapped.Error(), tt.text)
		})
	}
}

func TestConstructionError_Unwraps(t *testing.T) {
	t.Parallel()
	inner := &UnresolvedReferenceError{Name: "FileSystem", Attribute: "id", State: "Unresolved"}
	err := &ConstructionError{Name: "RedmineFilesAccessPoint", Err: inner}

	var target *UnresolvedReferenceError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, "FileSystem", target.Name)
}
