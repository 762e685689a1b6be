// Package catalog exposes the read-only template catalog: the example
// templates, the adapter binaries and the shared WIT fragments. A Catalog is
// constructed once and passed explicitly to the index and the instantiator,
// so tests can substitute an in-memory tree.
package catalog
