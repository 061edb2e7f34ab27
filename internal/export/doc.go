// Package export serializes a fully resolved graph into a plan document.
//
// A document lists every node in topological order together with the
// imported references it relies on. The plan ID and digest are derived from
// the document content, so the same input always yields the same bytes.
// Documents can be encoded as JSON, YAML or HCL.
package export
