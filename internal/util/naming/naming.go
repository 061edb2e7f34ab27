package naming

import (
	"fmt"
	"strings"
)

// IngressRule names the rule that lets source reach target.
func IngressRule(target, source string) string {
	return fmt.Sprintf("%sIngressFrom%s", target, source)
}

// MountKey is the extension key of a mount binding.
func MountKey(volume string) string {
	return "mount:" + volume
}

// VolumeKey is the extension key of a task definition volume.
func VolumeKey(volume string) string {
	return "volume:" + volume
}

// GrantKey is the extension key of a policy grant.
func GrantKey(target string) string {
	return "grant:" + target
}

// PlanObjectKey is the object key under which a plan document is stored.
func PlanObjectKey(stack, planID, ext string) string {
	return fmt.Sprintf("plans/%s/%s.%s", stack, planID, ext)
}

// PlanBucket derives a default bucket name from the stack name.
func PlanBucket(stack string) string {
	return fmt.Sprintf("%s-plans", strings.ToLower(stack))
}
