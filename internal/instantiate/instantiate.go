package instantiate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/golemcloud/golem-examples/internal/catalog"
	"github.com/golemcloud/golem-examples/internal/metadata"
	"github.com/golemcloud/golem-examples/internal/model"
)

// IOError reports a failed read or write while instantiating an example.
type IOError struct {
	Example model.ExampleName
	// Path is the catalog path for reads and the output path for writes.
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("instantiating %s: %s: %v", e.Example, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// Instantiator writes examples from a catalog to disk.
type Instantiator struct {
	cat    *catalog.Catalog
	logger *log.Logger
}

// New returns an Instantiator reading from cat. A nil logger discards
// output.
func New(cat *catalog.Catalog, logger *log.Logger) *Instantiator {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Instantiator{cat: cat, logger: logger}
}

// Instantiate writes ex under <p.TargetPath>/<p.ComponentName> using a
// logger-less Instantiator.
func Instantiate(cat *catalog.Catalog, ex model.Example, p model.ExampleParameters) (string, error) {
	return New(cat, nil).Instantiate(ex, p)
}

// Instantiate clones the example tree, copies its adapter and WIT
// dependencies, and returns the rendered instructions.
//
// Read and write failures are returned as *IOError. References to catalog
// entries that do not exist wrap catalog.ErrNotFound instead.
func (in *Instantiator) Instantiate(ex model.Example, p model.ExampleParameters) (string, error) {
	root := filepath.Join(p.TargetPath, p.ComponentName.String())
	in.logger.Debug("instantiating example", "example", ex.Name, "output", root)

	if err := in.cloneDir(ex, p, ex.ExamplePath, root, true); err != nil {
		return "", err
	}

	if ex.Adapter != "" {
		dst := filepath.Join(root, "adapters", ex.Language.Tier().Name(), ex.AdapterFileName())
		if err := in.copyFile(ex, catalog.Adapters, ex.Adapter, dst); err != nil {
			return "", err
		}
	}

	targets := []string{filepath.Join(root, "wit", "deps")}
	if len(ex.WITDepsTargets) > 0 {
		targets = targets[:0]
		for _, t := range ex.WITDepsTargets {
			targets = append(targets, filepath.Join(root, filepath.FromSlash(Transform(t, p))))
		}
	}
	for _, dep := range ex.WITDeps {
		for _, target := range targets {
			if err := in.copyWITDep(ex, dep, filepath.Join(target, path.Base(dep))); err != nil {
				return "", err
			}
		}
	}

	return Instructions(ex, p), nil
}

// readError classifies a catalog read failure.
func readError(ex model.Example, p string, err error) error {
	if errors.Is(err, catalog.ErrNotFound) {
		return fmt.Errorf("instantiating %s: %w", ex.Name, err)
	}
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr
	}
	return &IOError{Example: ex.Name, Path: p, Err: err}
}

// excludedAt reports whether name is skipped at the given level of the
// example tree.
func excludedAt(ex model.Example, name string, root bool) bool {
	if ex.Exclude[name] {
		return true
	}
	return root && metadata.IsFileName(name)
}
