// Package assets bundles the example catalog into the binary: the example
// templates, the WASI preview1 adapters keyed by language tier and the
// shared WIT dependency fragments.
package assets

import (
	"embed"
	"io/fs"
)

// The tree lives under an underscore directory so the go tool does not try
// to build the Go templates inside it. Templates that need a go.mod ship it
// as go.mod._ because embed skips directories holding a go.mod.
//
//go:embed all:_catalog
var catalogFS embed.FS

// Examples returns the tree of <language>/<example>/... templates.
func Examples() fs.FS { return sub("_catalog/examples") }

// Adapters returns the tree of <tier>/wasi_snapshot_preview1.wasm adapters.
func Adapters() fs.FS { return sub("_catalog/adapters") }

// WIT returns the tree of shared WIT fragments, one directory per package.
func WIT() fs.FS { return sub("_catalog/wit/deps") }

func sub(dir string) fs.FS {
	s, err := fs.Sub(catalogFS, dir)
	if err != nil {
		// fs.Sub only fails on an invalid path, and dir is a constant.
		panic(err)
	}
	return s
}
