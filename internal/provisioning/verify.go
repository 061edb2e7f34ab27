package provisioning

import (
	"fmt"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/imamik/redstack/internal/resource"
)

// VerifyImportsPhase asks the configured ResourceLocator whether every
// imported reference exists. It is a no-op without a locator.
type VerifyImportsPhase struct{}

// NewVerifyImportsPhase creates a new verification phase.
func NewVerifyImportsPhase() *VerifyImportsPhase {
	return &VerifyImportsPhase{}
}

// Name implements the Phase interface.
func (vp *VerifyImportsPhase) Name() string {
	return "imports"
}

// Provision implements the Phase interface.
func (vp *VerifyImportsPhase) Provision(ctx *Context) error {
	if ctx.Locator == nil {
		return nil
	}

	var errs []error
	for _, name := range ctx.State.Imported {
		node, ok := ctx.Graph.Node(name)
		if !ok {
			return &resource.DanglingReferenceError{Missing: name}
		}
		id, _ := node.Attributes.String(resource.AttrID)

		found, err := ctx.Locator.Locate(ctx, node.Kind, id)
		if err != nil {
			return fmt.Errorf("failed to locate %s %q: %w", node.Kind, id, err)
		}
		if !found {
			errs = append(errs, &resource.ConfigurationError{
				Field:   name,
				Message: fmt.Sprintf("imported %s %q does not exist", node.Kind, id),
			})
			continue
		}
		ctx.Observer.Printf("[imports] %s %s verified", node.Kind, id)
	}
	return utilerrors.NewAggregate(errs)
}
