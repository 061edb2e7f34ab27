// Package naming provides the derived names used across a plan: ingress
// rule names, graph extension keys, plan object keys and the default plan
// bucket.
package naming
