package provisioning

import (
	"fmt"

	"github.com/imamik/redstack/internal/config"
)

// ValidationPhase implements the Phase interface for input validation.
type ValidationPhase struct{}

// NewValidationPhase creates a new validation phase.
func NewValidationPhase() *ValidationPhase {
	return &ValidationPhase{}
}

// Name implements the Phase interface.
func (vp *ValidationPhase) Name() string {
	return "validation"
}

// Provision implements the Phase interface. Warnings are logged and kept on
// the state; any error-severity issue aborts with an aggregate of
// configuration errors.
func (vp *ValidationPhase) Provision(ctx *Context) error {
	issues := ctx.Input.Validate()

	for _, w := range config.Warnings(issues) {
		LogValidationWarning(ctx.Observer, w.Field, w.Message)
		ctx.State.Warnings = append(ctx.State.Warnings, fmt.Sprintf("%s: %s", w.Field, w.Message))
	}
	for _, i := range issues {
		if i.IsError() {
			LogValidationError(ctx.Observer, i.Field, i.Message)
		}
	}

	return config.IssuesError(issues)
}
