// Package catalog holds the fixed values every Redmine plan reproduces:
// logical names, ports, volumes and their ownership, health checks, the
// credential template, log destination, scaling bounds and task sizing.
//
// Nothing in this package is configurable. Callers read the tables and copy
// the values into graph nodes.
package catalog
