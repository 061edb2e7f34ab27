// Package resource defines the vocabulary shared by the composition core.
//
// A [Node] is one entry of the provisioning plan: a logical name, a [Kind],
// a [Provenance] and an attribute map. Attribute values are plain literals,
// typed descriptors ([MountBinding], [HealthCheck], [SecretBinding], ...),
// or indirect references ([Ref], [SecretRef]) that the provisioning backend
// resolves at deploy time.
//
// The error taxonomy used across the module lives in errors.go.
package resource
