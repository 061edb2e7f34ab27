// Package graph implements the dependency graph that holds the provisioning
// plan while it is being composed.
//
// Nodes are registered once under a unique logical name. Edges record that a
// node requires another one; they may only point at registered nodes and may
// never close a cycle. Each node moves through a small state machine:
//
//	Unresolved -> Resolving -> Resolved
//	                        \-> Failed
//
// Resolution runs the node's attribute builders after all of its dependencies
// are resolved. Builders read dependency attributes through a [Reader] that
// only grants access to declared dependencies. Results are memoized: a
// resolved node is never rebuilt.
//
// Registration and resolution are serialized behind a single mutex, so the
// node table has exactly one writer at a time.
package graph
