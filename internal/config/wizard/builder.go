package wizard

import (
	"strings"

	"github.com/imamik/redstack/internal/config"
)

// BuildContext creates a ResourceContext from the wizard result.
// Identifiers are dropped when the matching mode is "create".
func BuildContext(result *Result) config.ResourceContext {
	rc := config.ResourceContext{
		StackName:         strings.TrimSpace(result.StackName),
		CreateVpcEndpoint: result.CreateVpcEndpoint,
		ImageDirectory:    strings.TrimSpace(result.ImageDirectory),
	}

	if result.NetworkMode == ModeImport {
		rc.ExistingVpcID = strings.TrimSpace(result.ExistingVpcID)
	}
	if result.LoadBalancerMode == ModeImport {
		rc.ExistingAlbArn = strings.TrimSpace(result.ExistingAlbArn)
	}

	return rc
}
