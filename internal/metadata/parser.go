package metadata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"

	"go.yaml.in/yaml/v3"
)

// ErrInvalid marks a descriptor that could not be decoded or failed schema
// validation.
var ErrInvalid = errors.New("invalid example metadata")

// ErrNotFound is returned when a directory holds none of FileNames.
var ErrNotFound = errors.New("example metadata not found")

// Parse decodes a descriptor. source is the file name the bytes came from;
// a .json extension selects the JSON decoder, anything else YAML.
func Parse(data []byte, source string) (*ExampleMetadata, error) {
	var m ExampleMetadata
	var err error
	if path.Ext(source) == ".json" {
		err = json.Unmarshal(data, &m)
	} else {
		err = yaml.Unmarshal(data, &m)
	}
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrInvalid, source, err)
	}
	return &m, nil
}

// Find returns the path of the first descriptor present in dir.
func Find(fsys fs.FS, dir string) (string, error) {
	for _, name := range FileNames {
		p := path.Join(dir, name)
		if _, err := fs.Stat(fsys, p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w in %s", ErrNotFound, dir)
}

// Load finds, reads and parses the descriptor of the example in dir. When
// validate is set the raw document is checked against the schema first.
func Load(fsys fs.FS, dir string, validate bool) (*ExampleMetadata, error) {
	p, err := Find(fsys, dir)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", p, err)
	}

	if validate {
		result, err := Validate(data, p)
		if err != nil {
			return nil, err
		}
		if !result.Valid {
			return nil, fmt.Errorf("%w %s: %s", ErrInvalid, p, result.Summary())
		}
	}

	return Parse(data, p)
}
