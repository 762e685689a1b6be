// Package config manages user-level settings stored at
// ~/.golem-examples/config.yaml, overridable through GOLEM_EXAMPLES_*
// environment variables. Settings cover the catalog location, the default
// package name for new components, how index construction treats bad
// example metadata, and the build timeout used when testing examples.
package config
