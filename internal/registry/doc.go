// Package registry builds the example index from a catalog. Build walks the
// examples tree bucket by bucket, parses each example's metadata descriptor,
// resolves its adapter binary and shared WIT fragments, and verifies they
// exist. The resulting Index is immutable and answers listing and lookup
// queries.
package registry
