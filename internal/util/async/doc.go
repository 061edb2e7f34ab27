// Package async runs independent operations concurrently and collects
// every failure.
package async
