package config

import (
	"fmt"
	"regexp"
	"strings"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/imamik/redstack/internal/resource"
)

// Severity of a validation issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one validation finding.
type Issue struct {
	Field    string
	Message  string
	Severity Severity
}

// Error implements the error interface.
func (i Issue) Error() string {
	return fmt.Sprintf("[%s] %s: %s", i.Severity, i.Field, i.Message)
}

// IsError returns true if this is an error (not a warning).
func (i Issue) IsError() bool {
	return i.Severity == SeverityError
}

var (
	vpcIDRegex     = regexp.MustCompile(`^vpc-[0-9a-f]+$`)
	stackNameRegex = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9-]{0,127}$`)
)

// Validate checks the context and returns every finding.
func (c ResourceContext) Validate() []Issue {
	var issues []Issue
	add := func(field, msg string, sev Severity) {
		issues = append(issues, Issue{Field: field, Message: msg, Severity: sev})
	}

	if c.StackName != "" && !stackNameRegex.MatchString(c.StackName) {
		add(KeyStackName, fmt.Sprintf("invalid stack name %q: must start with a letter and contain only letters, digits and hyphens", c.StackName), SeverityError)
	}

	if c.ImportsVpc() && !vpcIDRegex.MatchString(c.ExistingVpcID) {
		add(KeyExistingVpcID, fmt.Sprintf("malformed network identifier %q: expected vpc-<hex>", c.ExistingVpcID), SeverityError)
	}

	if c.ImportsAlb() {
		switch {
		case !strings.HasPrefix(c.ExistingAlbArn, "arn:"):
			add(KeyExistingAlbArn, fmt.Sprintf("malformed load balancer reference %q: expected an ARN", c.ExistingAlbArn), SeverityError)
		case strings.ContainsAny(c.ExistingAlbArn, " \t\n"):
			add(KeyExistingAlbArn, "load balancer reference must not contain whitespace", SeverityError)
		}
		if !c.ImportsVpc() {
			add(KeyExistingAlbArn, "imported load balancer must be reachable from the newly created network", SeverityWarning)
		}
	}

	if c.CreateVpcEndpoint && c.ImportsVpc() {
		add(KeyCreateVpcEndpoint, "endpoints will be added to an existing network; make sure they do not exist already", SeverityWarning)
	}

	return issues
}

// Err aggregates the error-severity issues into a single error, or nil.
// Each aggregated error is a *resource.ConfigurationError.
func (c ResourceContext) Err() error {
	return IssuesError(c.Validate())
}

// IssuesError converts error-severity issues into an aggregate of
// configuration errors.
func IssuesError(issues []Issue) error {
	var errs []error
	for _, i := range issues {
		if i.IsError() {
			errs = append(errs, &resource.ConfigurationError{Field: i.Field, Message: i.Message})
		}
	}
	return utilerrors.NewAggregate(errs)
}

// Warnings returns the warning-severity issues.
func Warnings(issues []Issue) []Issue {
	var out []Issue
	for _, i := range issues {
		if !i.IsError() {
			out = append(out, i)
		}
	}
	return out
}
