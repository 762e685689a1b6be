package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golemcloud/golem-examples/internal/naming"
)

// ErrInvalidPackageName is returned when a package name is not in
// "namespace:name" form.
var ErrInvalidPackageName = errors.New("invalid package name")

// ComponentName is the user-supplied name of the component being generated.
type ComponentName string

// String returns the name exactly as given.
func (c ComponentName) String() string { return string(c) }

// Parts returns the lowercase word parts of the name.
func (c ComponentName) Parts() []string { return naming.Split(string(c)) }

// KebabCase renders the name as component-name.
func (c ComponentName) KebabCase() string { return naming.Kebab(c.Parts()) }

// SnakeCase renders the name as component_name.
func (c ComponentName) SnakeCase() string { return naming.Snake(c.Parts()) }

// PascalCase renders the name as ComponentName.
func (c ComponentName) PascalCase() string { return naming.Pascal(c.Parts()) }

// CamelCase renders the name as componentName.
func (c ComponentName) CamelCase() string { return naming.Camel(c.Parts()) }

// ExampleName identifies an example in the catalog. It is the example's
// directory name.
type ExampleName string

func (e ExampleName) String() string { return string(e) }

// PackageName is a "namespace:name" pair.
type PackageName struct {
	namespace string
	name      string
}

// ParsePackageName parses s in "namespace:name" form. Exactly one colon is
// required.
func ParsePackageName(s string) (PackageName, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return PackageName{}, fmt.Errorf("%w %q: must be in 'pack:name' format", ErrInvalidPackageName, s)
	}
	return PackageName{namespace: parts[0], name: parts[1]}, nil
}

// MustParsePackageName is like ParsePackageName but panics on error. It is
// meant for compile-time constants.
func MustParsePackageName(s string) PackageName {
	p, err := ParsePackageName(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Namespace returns the part before the colon.
func (p PackageName) Namespace() string { return p.namespace }

// Name returns the part after the colon.
func (p PackageName) Name() string { return p.name }

// IsZero reports whether p was never parsed.
func (p PackageName) IsZero() bool { return p == PackageName{} }

// String returns the colon form, e.g. "golem:component".
func (p PackageName) String() string { return p.WithColon() }

// WithColon renders "ns:name".
func (p PackageName) WithColon() string { return p.namespace + ":" + p.name }

// WithDoubleColon renders "ns::name".
func (p PackageName) WithDoubleColon() string { return p.namespace + "::" + p.name }

// WithSlash renders "ns/name".
func (p PackageName) WithSlash() string { return p.namespace + "/" + p.name }

// SnakeCase renders "ns_name".
func (p PackageName) SnakeCase() string { return p.namespace + "_" + p.name }

// KebabCase renders "ns-name".
func (p PackageName) KebabCase() string { return p.namespace + "-" + p.name }

// PascalCase renders the namespace and the name in Pascal case and
// concatenates them: "foo:bar" becomes "FooBar".
func (p PackageName) PascalCase() string {
	return naming.Pascal(naming.Split(p.namespace)) + naming.Pascal(naming.Split(p.name))
}

// NamespaceTitleCase renders the namespace alone in Pascal case.
func (p PackageName) NamespaceTitleCase() string {
	return naming.Pascal(naming.Split(p.namespace))
}

// MarshalText implements encoding.TextMarshaler.
func (p PackageName) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PackageName) UnmarshalText(text []byte) error {
	parsed, err := ParsePackageName(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
