package model

import (
	"path"
)

// Example is one scaffoldable template. Paths are slash-separated and
// relative to the corresponding catalog tree: ExamplePath to the examples
// tree, Adapter to the adapters tree, WITDeps to the shared WIT tree.
type Example struct {
	Name        ExampleName
	Language    GuestLanguage
	Description string
	ExamplePath string
	// Instructions is the raw, unrendered instruction text.
	Instructions string
	// Adapter is empty when the example does not need an adapter binary.
	Adapter string
	WITDeps []string
	// WITDepsTargets overrides the default wit/deps output directory. Nil
	// means the default.
	WITDepsTargets   []string
	Exclude          map[string]bool
	TransformExclude map[string]bool
}

// AdapterFileName returns the base name of the adapter binary, or "" when
// the example has none.
func (e Example) AdapterFileName() string {
	if e.Adapter == "" {
		return ""
	}
	return path.Base(e.Adapter)
}

// ExampleParameters is a single instantiation request.
type ExampleParameters struct {
	ComponentName ComponentName
	PackageName   PackageName
	// TargetPath is the directory the component directory is created in.
	TargetPath string
}
