package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamingFunctions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"IngressRule", IngressRule("FileSystem", "Service"), "FileSystemIngressFromService"},
		{"MountKey", MountKey("redmine-db"), "mount:redmine-db"},
		{"VolumeKey", VolumeKey("redmine-git"), "volume:redmine-git"},
		{"GrantKey", GrantKey("FileSystem"), "grant:FileSystem"},
		{"PlanObjectKey", PlanObjectKey("RedmineStack", "abc", "json"), "plans/RedmineStack/abc.json"},
		{"PlanBucket", PlanBucket("RedmineStack"), "redminestack-plans"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}
