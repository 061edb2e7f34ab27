// Package config defines the composition input of a Redmine plan.
//
// A [ResourceContext] says which resources already exist and which optional
// features are enabled. It is read from a YAML context file, overridden by
// REDSTACK_* environment variables and finally by explicit key=value
// overrides from the command line. The composer receives it by value, so it
// cannot change once composition has started.
package config
