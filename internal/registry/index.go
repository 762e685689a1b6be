package registry

import (
	"strings"

	"github.com/golemcloud/golem-examples/internal/model"
)

// Index is the immutable list of examples built from a catalog.
type Index struct {
	examples []model.Example
}

// NewIndex wraps an explicit list of examples, mostly for tests.
func NewIndex(examples []model.Example) *Index {
	return &Index{examples: append([]model.Example(nil), examples...)}
}

// All returns every example in catalog order. The returned slice is a copy.
func (i *Index) All() []model.Example {
	return append([]model.Example(nil), i.examples...)
}

// Len returns the number of indexed examples.
func (i *Index) Len() int { return len(i.examples) }

// List returns the examples matching f, in catalog order.
func (i *Index) List(f Filter) []model.Example {
	var result []model.Example
	for _, ex := range i.examples {
		if f.matches(ex) {
			result = append(result, ex)
		}
	}
	return result
}

// Find looks an example up by exact name.
func (i *Index) Find(name model.ExampleName) (model.Example, bool) {
	for _, ex := range i.examples {
		if ex.Name == name {
			return ex, true
		}
	}
	return model.Example{}, false
}

// Default returns the "<language-id>-default" example of lang.
func (i *Index) Default(lang model.GuestLanguage) (model.Example, bool) {
	return i.Find(model.ExampleName(lang.ID() + "-default"))
}

// Match returns the examples whose name contains substr. An empty substr
// matches everything.
func (i *Index) Match(substr string) []model.Example {
	var result []model.Example
	for _, ex := range i.examples {
		if strings.Contains(string(ex.Name), substr) {
			result = append(result, ex)
		}
	}
	return result
}
