// Package wizard provides the interactive context wizard behind
// "redstack init".
//
// It asks whether the network and load balancer should be imported or
// created, collects their identifiers, and whether the private service
// endpoints are wanted. Forms are built with charmbracelet/huh.
// BuildContext converts the answers and WriteContext writes the YAML file.
package wizard
