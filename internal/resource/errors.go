package resource

import (
	"errors"
	"fmt"
	"strings"
)

// Error classes. Every error produced by the composition core matches exactly
// one of these through errors.Is.
var (
	ErrConfiguration = errors.New("configuration error")
	ErrDependency    = errors.New("dependency error")
	ErrConstruction  = errors.New("construction error")
)

// ConfigurationError reports a malformed or contradictory input reference.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Message)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// DuplicateNodeError is returned when a logical name is registered twice.
type DuplicateNodeError struct {
	Name string
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("duplicate node %q: logical name already registered", e.Name)
}

func (e *DuplicateNodeError) Is(target error) bool { return target == ErrDependency }

// DanglingReferenceError is returned when an edge or lookup names an
// unregistered node. Missing is the name that could not be found.
type DanglingReferenceError struct {
	From    string
	To      string
	Missing string
}

func (e *DanglingReferenceError) Error() string {
	if e.From == "" {
		return fmt.Sprintf("dangling reference: node %q is not registered", e.Missing)
	}
	return fmt.Sprintf("dangling reference %s -> %s: node %q is not registered", e.From, e.To, e.Missing)
}

func (e *DanglingReferenceError) Is(target error) bool { return target == ErrDependency }

// CycleError is returned when an edge would close a dependency cycle.
// Path lists the nodes of the cycle, starting and ending at the same name.
type CycleError struct {
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("dependency cycle: %s", strings.Join(e.Path, " -> "))
}

func (e *CycleError) Is(target error) bool { return target == ErrDependency }

// UnresolvedReferenceError is returned when an attribute is read from a node
// that is not resolved, or that has no such attribute.
type UnresolvedReferenceError struct {
	Name      string
	Attribute string
	State     string
}

func (e *UnresolvedReferenceError) Error() string {
	if e.State == "" {
		return fmt.Sprintf("unresolved reference %s.%s: attribute not set", e.Name, e.Attribute)
	}
	return fmt.Sprintf("unresolved reference %s.%s: node is %s", e.Name, e.Attribute, e.State)
}

func (e *UnresolvedReferenceError) Is(target error) bool { return target == ErrConstruction }

// ConstructionError wraps a failure while building or wiring a node.
type ConstructionError struct {
	Name string
	Err  error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("construction of %q failed: %v", e.Name, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

func (e *ConstructionError) Is(target error) bool { return target == ErrConstruction }

// IncompleteGraphError is returned by the exporter when nodes are not resolved.
type IncompleteGraphError struct {
	Pending []string
}

func (e *IncompleteGraphError) Error() string {
	return fmt.Sprintf("incomplete graph: %d unresolved node(s): %s", len(e.Pending), strings.Join(e.Pending, ", "))
}

func (e *IncompleteGraphError) Is(target error) bool { return target == ErrConstruction }
