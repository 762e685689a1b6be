package metadata

// FileNames lists the recognized descriptor names in lookup order.
var FileNames = []string{"metadata.json", "metadata.yaml", "metadata.yml"}

// ExampleMetadata is the on-disk descriptor of an example.
type ExampleMetadata struct {
	Description          string   `yaml:"description" json:"description"`
	RequiresAdapter      *bool    `yaml:"requiresAdapter,omitempty" json:"requiresAdapter,omitempty"`
	RequiresGolemHostWIT *bool    `yaml:"requiresGolemHostWIT,omitempty" json:"requiresGolemHostWIT,omitempty"`
	RequiresWASI         *bool    `yaml:"requiresWASI,omitempty" json:"requiresWASI,omitempty"`
	Exclude              []string `yaml:"exclude" json:"exclude"`
	Instructions         string   `yaml:"instructions,omitempty" json:"instructions,omitempty"`
	TransformExclude     []string `yaml:"transformExclude,omitempty" json:"transformExclude,omitempty"`
	WITDepsPaths         []string `yaml:"witDepsPaths,omitempty" json:"witDepsPaths,omitempty"`
}

// NeedsAdapter reports whether the example needs the WASI preview1 adapter.
// Defaults to true.
func (m *ExampleMetadata) NeedsAdapter() bool {
	return m.RequiresAdapter == nil || *m.RequiresAdapter
}

// NeedsGolemHostWIT reports whether the Golem host interfaces are copied.
func (m *ExampleMetadata) NeedsGolemHostWIT() bool {
	return m.RequiresGolemHostWIT != nil && *m.RequiresGolemHostWIT
}

// NeedsWASI reports whether the standard WASI interfaces are copied.
func (m *ExampleMetadata) NeedsWASI() bool {
	return m.RequiresWASI != nil && *m.RequiresWASI
}

// IsFileName reports whether name is a descriptor file name.
func IsFileName(name string) bool {
	for _, n := range FileNames {
		if n == name {
			return true
		}
	}
	return false
}
