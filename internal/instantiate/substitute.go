package instantiate

import (
	"strings"

	"github.com/golemcloud/golem-examples/internal/model"
)

// replacement is one placeholder token and the value it is rewritten to.
type replacement struct {
	token string
	value string
}

// replacements returns the substitution table in application order. Order is
// significant: each token is replaced across the whole string before the
// next is looked for.
func replacements(p model.ExampleParameters) []replacement {
	return []replacement{
		{"component-name", p.ComponentName.KebabCase()},
		{"ComponentName", p.ComponentName.PascalCase()},
		{"component_name", p.ComponentName.SnakeCase()},
		{"pack::name", p.PackageName.WithDoubleColon()},
		{"pack:name", p.PackageName.WithColon()},
		{"pack_name", p.PackageName.SnakeCase()},
		{"pack-name", p.PackageName.KebabCase()},
		{"pack/name", p.PackageName.WithSlash()},
		{"PackName", p.PackageName.PascalCase()},
		{"pack-ns", p.PackageName.Namespace()},
		{"PackNs", p.PackageName.NamespaceTitleCase()},
	}
}

// renamedManifests maps template file names to the names they are written
// under. Build manifests are stored renamed so the toolchains do not treat
// the template directory itself as a package.
var renamedManifests = []replacement{
	{"Cargo.toml._", "Cargo.toml"},
	{"go.mod._", "go.mod"},
}

// Transform applies the token substitution pass to s.
func Transform(s string, p model.ExampleParameters) string {
	for _, r := range replacements(p) {
		s = strings.ReplaceAll(s, r.token, r.value)
	}
	return s
}

// TransformFileName applies the substitution pass to a single file or
// directory name and restores renamed build manifests.
func TransformFileName(name string, p model.ExampleParameters) string {
	name = Transform(name, p)
	for _, r := range renamedManifests {
		name = strings.ReplaceAll(name, r.token, r.value)
	}
	return name
}

// Instructions renders the example's instruction text for p.
func Instructions(ex model.Example, p model.ExampleParameters) string {
	return Transform(ex.Instructions, p)
}
