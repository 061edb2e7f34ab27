// Package s3 stores plan documents in an S3 bucket.
//
// The Client wraps the AWS SDK for bucket and object operations and works
// with any S3-compatible endpoint. The Publisher builds on it: it creates
// the bucket when needed and uploads documents under a content-derived key,
// retrying transient failures with exponential backoff.
package s3
