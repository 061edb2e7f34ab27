package wizard

import "errors"

// Validation errors for the interactive wizard.
var (
	errStackNameRequired = errors.New("stack name is required")
	errStackNameInvalid  = errors.New("stack name must start with a letter and contain only letters, digits and hyphens")
	errVpcIDRequired     = errors.New("VPC id is required when importing")
	errVpcIDInvalid      = errors.New("VPC id must look like vpc-0123abcd")
	errAlbArnRequired    = errors.New("load balancer ARN is required when importing")
	errAlbArnInvalid     = errors.New("load balancer reference must be an ARN (arn:...)")
)
