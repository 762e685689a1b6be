// Package metadata parses and validates the per-example descriptor
// (metadata.json, or metadata.yaml) that ships next to every example in the
// catalog. Descriptors are checked against an embedded JSON Schema before the
// index trusts them.
package metadata
