package config

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/imamik/redstack/internal/resource"
)

// Environment variables read by ApplyEnv.
const (
	EnvStackName         = "REDSTACK_STACK_NAME"
	EnvExistingVpcID     = "REDSTACK_EXISTING_VPC_ID"
	EnvExistingAlbArn    = "REDSTACK_EXISTING_ALB_ARN"
	EnvCreateVpcEndpoint = "REDSTACK_CREATE_VPC_ENDPOINT"
	EnvImageDirectory    = "REDSTACK_IMAGE_DIRECTORY"
)

// Override keys accepted by ApplyOverrides. They match the context file keys.
const (
	KeyStackName         = "stackName"
	KeyExistingVpcID     = "existingVpcId"
	KeyExistingAlbArn    = "existingAlbArn"
	KeyCreateVpcEndpoint = "createVpcEndpoint"
	KeyImageDirectory    = "imageDirectory"
)

// ApplyEnv overlays REDSTACK_* environment variables. Unset or empty
// variables leave the field untouched.
//
// Environment Variables:
//   - REDSTACK_STACK_NAME
//   - REDSTACK_EXISTING_VPC_ID
//   - REDSTACK_EXISTING_ALB_ARN
//   - REDSTACK_CREATE_VPC_ENDPOINT (true/false)
//   - REDSTACK_IMAGE_DIRECTORY
func ApplyEnv(rc ResourceContext) (ResourceContext, error) {
	rc.StackName = parseString(EnvStackName, rc.StackName)
	rc.ExistingVpcID = parseString(EnvExistingVpcID, rc.ExistingVpcID)
	rc.ExistingAlbArn = parseString(EnvExistingAlbArn, rc.ExistingAlbArn)
	rc.ImageDirectory = parseString(EnvImageDirectory, rc.ImageDirectory)

	b, err := parseBool(EnvCreateVpcEndpoint, rc.CreateVpcEndpoint)
	if err != nil {
		return ResourceContext{}, err
	}
	rc.CreateVpcEndpoint = b
	return rc, nil
}

// ApplyOverrides applies key=value pairs from the command line. An empty
// value clears a string setting.
func ApplyOverrides(rc ResourceContext, overrides map[string]string) (ResourceContext, error) {
	for _, key := range slices.Sorted(maps.Keys(overrides)) {
		val := strings.TrimSpace(overrides[key])
		switch key {
		case KeyStackName:
			rc.StackName = val
		case KeyExistingVpcID:
			rc.ExistingVpcID = val
		case KeyExistingAlbArn:
			rc.ExistingAlbArn = val
		case KeyImageDirectory:
			rc.ImageDirectory = val
		case KeyCreateVpcEndpoint:
			b, err := strconv.ParseBool(val)
			if err != nil {
				return ResourceContext{}, &resource.ConfigurationError{Field: key, Message: fmt.Sprintf("invalid boolean %q", val)}
			}
			rc.CreateVpcEndpoint = b
		default:
			return ResourceContext{}, &resource.ConfigurationError{Field: key, Message: "unknown setting"}
		}
	}
	return rc, nil
}

func parseString(envVar, defaultVal string) string {
	val := strings.TrimSpace(os.Getenv(envVar))
	if val == "" {
		return defaultVal
	}
	return val
}

// parseBool reports malformed values instead of falling back to the default.
func parseBool(envVar string, defaultVal bool) (bool, error) {
	val := strings.TrimSpace(os.Getenv(envVar))
	if val == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, &resource.ConfigurationError{Field: envVar, Message: fmt.Sprintf("invalid boolean %q", val)}
	}
	return b, nil
}
