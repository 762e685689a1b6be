// Package cli defines the Cobra command tree for the golem-examples CLI. Each
// file in this package registers one top-level command (new, list-examples,
// test-examples, etc.) with the root command. Command implementations
// delegate to internal packages for business logic and only handle flag
// parsing, I/O formatting, and logging.
package cli
