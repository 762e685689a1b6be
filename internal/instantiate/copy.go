package instantiate

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"unicode/utf8"

	"github.com/golemcloud/golem-examples/internal/catalog"
	"github.com/golemcloud/golem-examples/internal/model"
)

const (
	dirMode  fs.FileMode = 0755
	fileMode fs.FileMode = 0644
	execMode fs.FileMode = 0755
)

// cloneDir recursively copies the example directory src into dst, renaming
// entries and rewriting text contents. root marks the top of the example
// tree, where metadata descriptors are also skipped.
func (in *Instantiator) cloneDir(ex model.Example, p model.ExampleParameters, src, dst string, root bool) error {
	if err := os.MkdirAll(dst, dirMode); err != nil {
		return &IOError{Example: ex.Name, Path: dst, Err: err}
	}

	entries, err := in.cat.ReadDir(catalog.Examples, src)
	if err != nil {
		return readError(ex, src, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if excludedAt(ex, name, root) {
			in.logger.Debug("excluded", "example", ex.Name, "path", path.Join(src, name))
			continue
		}

		srcPath := path.Join(src, name)
		dstPath := filepath.Join(dst, TransformFileName(name, p))

		switch {
		case entry.IsDir():
			if err := in.cloneDir(ex, p, srcPath, dstPath, false); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			if err := in.cloneFile(ex, p, srcPath, dstPath, !ex.TransformExclude[name]); err != nil {
				return err
			}
		default:
			// Symlinks and special files are not copied.
			in.logger.Debug("skipping non-regular entry", "example", ex.Name, "path", srcPath)
		}
	}

	return nil
}

// cloneFile copies a template file, applying the substitution pass when
// transform is set and the contents are valid UTF-8.
func (in *Instantiator) cloneFile(ex model.Example, p model.ExampleParameters, src, dst string, transform bool) error {
	data, mode, err := in.read(ex, catalog.Examples, src)
	if err != nil {
		return err
	}
	if transform && utf8.Valid(data) {
		data = []byte(Transform(string(data), p))
	}
	return in.write(ex, dst, data, mode)
}

// copyFile copies a catalog file verbatim to dst, creating parent
// directories.
func (in *Instantiator) copyFile(ex model.Example, tree catalog.Tree, src, dst string) error {
	data, mode, err := in.read(ex, tree, src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), dirMode); err != nil {
		return &IOError{Example: ex.Name, Path: filepath.Dir(dst), Err: err}
	}
	return in.write(ex, dst, data, mode)
}

// copyWITDep copies the files directly inside the WIT fragment directory dep
// to dst. Subdirectories are not descended into.
func (in *Instantiator) copyWITDep(ex model.Example, dep, dst string) error {
	entries, err := in.cat.ReadDir(catalog.WIT, dep)
	if err != nil {
		return readError(ex, dep, err)
	}
	if err := os.MkdirAll(dst, dirMode); err != nil {
		return &IOError{Example: ex.Name, Path: dst, Err: err}
	}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		src := path.Join(dep, entry.Name())
		data, mode, err := in.read(ex, catalog.WIT, src)
		if err != nil {
			return err
		}
		if err := in.write(ex, filepath.Join(dst, entry.Name()), data, mode); err != nil {
			return err
		}
	}
	return nil
}

// read returns a catalog file and the mode it should be written with.
func (in *Instantiator) read(ex model.Example, tree catalog.Tree, src string) ([]byte, fs.FileMode, error) {
	info, err := in.cat.Stat(tree, src)
	if err != nil {
		return nil, 0, readError(ex, src, err)
	}
	data, err := in.cat.ReadFile(tree, src)
	if err != nil {
		return nil, 0, readError(ex, src, err)
	}
	mode := fileMode
	if info.Mode().Perm()&0111 != 0 {
		mode = execMode
	}
	return data, mode, nil
}

func (in *Instantiator) write(ex model.Example, dst string, data []byte, mode fs.FileMode) error {
	if err := os.WriteFile(dst, data, mode); err != nil {
		return &IOError{Example: ex.Name, Path: dst, Err: err}
	}
	in.logger.Debug("wrote", "example", ex.Name, "path", dst)
	return nil
}
