package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLabelBuilder(t *testing.T) {
	t.Parallel()
	labels := NewLabelBuilder("RedmineStack").Build()

	assert.Equal(t, map[string]string{
		KeyStack:     "RedmineStack",
		KeyManagedBy: ManagedByRedstack,
	}, labels)
}

func TestWithRoleAndComponent(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		role      string
		component string
		want      map[string]string
	}{
		{"role only", RoleStorage, "", map[string]string{KeyRole: RoleStorage}},
		{"both", RoleCompute, "Service", map[string]string{KeyRole: RoleCompute, KeyComponent: "Service"}},
		{"empty ignored", "", "", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			labels := NewLabelBuilder("s").WithRole(tt.role).WithComponent(tt.component).Build()
			for k, v := range tt.want {
				assert.Equal(t, v, labels[k])
			}
			assert.Len(t, labels, 2+len(tt.want))
		})
	}
}

func TestMerge_KeepsReservedKeys(t *testing.T) {
	t.Parallel()
	labels := NewLabelBuilder("s").
		WithRole(RoleNetwork).
		Merge(map[string]string{KeyStack: "other", "team": "ops", KeyComponent: "x"}).
		Build()

	assert.Equal(t, "s", labels[KeyStack])
	assert.Equal(t, "ops", labels["team"])
	assert.Equal(t, "x", labels[KeyComponent])
}

func TestWithManagedBy(t *testing.T) {
	t.Parallel()
	labels := NewLabelBuilder("s").WithManagedBy("ci").Build()
	assert.Equal(t, "ci", labels[KeyManagedBy])
}

func TestBuild_ReturnsCopy(t *testing.T) {
	t.Parallel()
	lb := NewLabelBuilder("s")
	first := lb.Build()
	first[KeyStack] = "mutated"

	assert.Equal(t, "s", lb.Build()[KeyStack])
}

func TestSelectorForStack(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "redstack.io/stack=RedmineStack", SelectorForStack("RedmineStack"))
}
