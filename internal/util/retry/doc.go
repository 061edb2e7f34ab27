// Package retry provides exponential backoff for transient failures.
//
// [WithExponentialBackoff] retries an operation with configurable attempts,
// delays and a retry predicate. It wraps plan uploads to object storage.
// Composition itself never retries.
package retry
