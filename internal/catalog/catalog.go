package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/golemcloud/golem-examples/assets"
)

// ErrNotFound marks a reference to a catalog entry that does not exist. It
// indicates a broken template or packaging defect, not a runtime condition.
var ErrNotFound = errors.New("catalog entry not found")

// Tree selects one of the three catalog roots.
type Tree string

const (
	// Examples holds <language>/<example>/... templates.
	Examples Tree = "examples"
	// Adapters holds <tier>/<adapter>.wasm binaries.
	Adapters Tree = "adapters"
	// WIT holds shared WIT fragments, one directory per package.
	WIT Tree = "wit/deps"
)

// EmbeddedSource is the Source of the catalog compiled into the binary.
const EmbeddedSource = "embedded"

// Catalog is an immutable handle on the three catalog trees.
type Catalog struct {
	trees  map[Tree]fs.FS
	source string
}

// New builds a catalog from arbitrary file systems.
func New(examples, adapters, wit fs.FS) *Catalog {
	return &Catalog{
		trees: map[Tree]fs.FS{
			Examples: examples,
			Adapters: adapters,
			WIT:      wit,
		},
		source: "custom",
	}
}

// Embedded returns the catalog compiled into the binary.
func Embedded() *Catalog {
	c := New(assets.Examples(), assets.Adapters(), assets.WIT())
	c.source = EmbeddedSource
	return c
}

// FromDir opens a catalog checkout laid out like the embedded one:
// <root>/examples, <root>/adapters and <root>/wit/deps.
func FromDir(root string) (*Catalog, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving catalog directory %s: %w", root, err)
	}

	examplesDir := filepath.Join(abs, string(Examples))
	info, err := os.Stat(examplesDir)
	if err != nil {
		return nil, fmt.Errorf("opening catalog %s: %w", abs, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("opening catalog %s: %s is not a directory", abs, examplesDir)
	}

	c := New(
		os.DirFS(examplesDir),
		os.DirFS(filepath.Join(abs, string(Adapters))),
		os.DirFS(filepath.Join(abs, filepath.FromSlash(string(WIT)))),
	)
	c.source = abs
	return c, nil
}

// Source describes where the catalog came from: EmbeddedSource, a
// directory path, or "custom".
func (c *Catalog) Source() string { return c.source }

// FS returns the raw file system of a tree.
func (c *Catalog) FS(tree Tree) fs.FS { return c.trees[tree] }

// ReadFile returns the contents of the file at the slash-separated path p.
func (c *Catalog) ReadFile(tree Tree, p string) ([]byte, error) {
	data, err := fs.ReadFile(c.trees[tree], p)
	if err != nil {
		return nil, entryError(tree, p, err)
	}
	return data, nil
}

// ReadDir lists the directory at p in fs.ReadDir order.
func (c *Catalog) ReadDir(tree Tree, p string) ([]fs.DirEntry, error) {
	entries, err := fs.ReadDir(c.trees[tree], p)
	if err != nil {
		return nil, entryError(tree, p, err)
	}
	return entries, nil
}

// Stat returns file info for p.
func (c *Catalog) Stat(tree Tree, p string) (fs.FileInfo, error) {
	info, err := fs.Stat(c.trees[tree], p)
	if err != nil {
		return nil, entryError(tree, p, err)
	}
	return info, nil
}

// HasFile reports whether p exists and is a regular file.
func (c *Catalog) HasFile(tree Tree, p string) bool {
	info, err := c.Stat(tree, p)
	return err == nil && !info.IsDir()
}

// HasDir reports whether p exists and is a directory.
func (c *Catalog) HasDir(tree Tree, p string) bool {
	info, err := c.Stat(tree, p)
	return err == nil && info.IsDir()
}

func entryError(tree Tree, p string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s/%s", ErrNotFound, tree, p)
	}
	return fmt.Errorf("reading catalog %s/%s: %w", tree, p, err)
}
