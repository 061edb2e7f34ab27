// Package compose turns a ResourceContext into a fully resolved dependency
// graph describing a Redmine deployment.
//
// The work runs as an ordered list of provisioning phases. The first phases
// decide import-or-create for the network and the load balancer and register
// the created topology. Later phases attach derived wiring to nodes that are
// still unresolved: access points and mount bindings, credential
// references, the file system ingress rule, health checks and scaling
// bounds. The final phase resolves every node in dependency order.
//
// Any error aborts the whole pass; no partial graph is returned.
package compose
